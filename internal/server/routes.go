package server

import "net/http"

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	mux.HandleFunc("POST /assess", s.handleAssess)
	mux.HandleFunc("POST /questionnaire", s.handleQuestionnaire)
	mux.HandleFunc("POST /retrain", s.handleRetrain)

	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /records", s.handleRecords)
	mux.HandleFunc("GET /records/export", s.handleRecordsExport)
	mux.HandleFunc("DELETE /records", s.handleRecordsClear)
	mux.HandleFunc("DELETE /records/last", s.handleRecordsRemoveLast)

	return mux
}
