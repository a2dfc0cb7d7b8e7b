package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/roadguard/roadguard/internal/engine"
	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/records"
	"github.com/roadguard/roadguard/internal/sysinfo"
)

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Name          string              `json:"name"`
	Version       string              `json:"version"`
	UptimeSeconds float64             `json:"uptime_seconds"`
	Records       int                 `json:"records"`
	Models        []engine.CacheEntry `json:"models"`
	System        sysinfo.Snapshot    `json:"system"`
}

type AssessRequest struct {
	Driver       string            `json:"driver"`
	SleepHours   float64           `json:"sleep_hours"`
	DrivingHours float64           `json:"driving_hours"`
	CaffeineCups float64           `json:"caffeine_cups"`
	RestBreaks   float64           `json:"rest_breaks"`
	StressLevel  int               `json:"stress_level"`
	TimeOfDay    fatigue.TimeOfDay `json:"time_of_day"`
	Age          int               `json:"age"`
}

type QuestionnaireRequest struct {
	Responses []int `json:"responses"`
}

type QuestionnaireResponse struct {
	Label       fatigue.Label `json:"label"`
	Probability float64       `json:"probability"`
	Model       string        `json:"model"`
}

type RetrainRequest struct {
	Seed                 *int64 `json:"seed,omitempty"`
	BehavioralSamples    int    `json:"behavioral_samples,omitempty"`
	QuestionnaireSamples int    `json:"questionnaire_samples,omitempty"`
}

type RetrainResponse struct {
	Retrained bool                `json:"retrained"`
	Seed      int64               `json:"seed"`
	Models    []engine.CacheEntry `json:"models"`
}

type ClearResponse struct {
	Cleared int `json:"cleared"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resp := InfoResponse{
		Name:    "roadguard",
		Version: s.version,
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Name:          "roadguard",
		Version:       s.version,
		UptimeSeconds: time.Since(s.started).Seconds(),
		Records:       s.store.Stats().Total,
		Models:        s.engine.CacheEntries(),
		System:        s.collector.Collect(r.Context()),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	in := fatigue.BehavioralInput{
		SleepHours:   req.SleepHours,
		DrivingHours: req.DrivingHours,
		CaffeineCups: req.CaffeineCups,
		RestBreaks:   req.RestBreaks,
		StressLevel:  req.StressLevel,
		TimeOfDay:    req.TimeOfDay,
		Age:          req.Age,
	}

	// Validate up front so the stored record carries the clamped values the
	// score is computed from, not the raw request.
	sample, err := in.Validate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := s.currentConfig()
	m, err := s.engine.BehavioralModel(cfg.Engine.BehavioralSamples, cfg.Engine.Seed)
	if err != nil {
		s.logger.Error("behavioral model unavailable", "error", err)
		http.Error(w, "model unavailable", http.StatusInternalServerError)
		return
	}

	assessment, err := s.engine.Assess(in, m)
	if err != nil {
		if errors.Is(err, fatigue.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("assessment failed", "error", err)
		http.Error(w, "assessment failed", http.StatusInternalServerError)
		return
	}

	s.store.Add(records.Record{
		Timestamp:    time.Now(),
		Driver:       req.Driver,
		SleepHours:   sample.SleepHours,
		DrivingHours: sample.DrivingHours,
		CaffeineCups: sample.CaffeineCups,
		RestBreaks:   sample.RestBreaks,
		StressLevel:  sample.StressLevel,
		TimeOfDay:    sample.TimeOfDay,
		Age:          sample.Age,
		Score:        assessment.Score,
		Label:        assessment.Label,
		Probability:  assessment.Probability,
		Risk:         assessment.Risk,
	})

	s.writeJSON(w, http.StatusOK, assessment)
}

func (s *Server) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req QuestionnaireRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := s.currentConfig()
	m, err := s.engine.QuestionnaireModel(cfg.Engine.QuestionnaireSamples, cfg.Engine.Seed)
	if err != nil {
		s.logger.Error("questionnaire model unavailable", "error", err)
		http.Error(w, "model unavailable", http.StatusInternalServerError)
		return
	}

	label, p, err := s.engine.PredictQuestionnaire(req.Responses, m)
	if err != nil {
		var mismatch *fatigue.SchemaMismatchError
		if errors.As(err, &mismatch) || errors.Is(err, fatigue.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("questionnaire prediction failed", "error", err)
		http.Error(w, "prediction failed", http.StatusInternalServerError)
		return
	}

	resp := QuestionnaireResponse{
		Label:       label,
		Probability: p,
		Model:       m.Name(),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRetrain(w http.ResponseWriter, r *http.Request) {
	var req RetrainRequest

	// An empty body retrains with the configured settings.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := s.currentConfig()
	seed := cfg.Engine.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	behavioral := req.BehavioralSamples
	if behavioral <= 0 {
		behavioral = cfg.Engine.BehavioralSamples
	}
	questionnaire := req.QuestionnaireSamples
	if questionnaire <= 0 {
		questionnaire = cfg.Engine.QuestionnaireSamples
	}

	s.engine.Invalidate()

	if _, err := s.engine.BehavioralModel(behavioral, seed); err != nil {
		s.logger.Error("behavioral retrain failed", "error", err)
		http.Error(w, "retrain failed", http.StatusInternalServerError)
		return
	}
	if _, err := s.engine.QuestionnaireModel(questionnaire, seed); err != nil {
		s.logger.Error("questionnaire retrain failed", "error", err)
		http.Error(w, "retrain failed", http.StatusInternalServerError)
		return
	}

	resp := RetrainResponse{
		Retrained: true,
		Seed:      seed,
		Models:    s.engine.CacheEntries(),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Stats())
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	list := s.store.List()

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		if limit < len(list) {
			list = list[len(list)-limit:]
		}
	}

	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRecordsExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assessments.csv"`)

	if err := s.store.ExportCSV(w); err != nil {
		s.logger.Error("failed to export records", "error", err)
	}
}

func (s *Server) handleRecordsClear(w http.ResponseWriter, r *http.Request) {
	cleared := s.store.Stats().Total
	s.store.Clear()

	s.writeJSON(w, http.StatusOK, ClearResponse{Cleared: cleared})
}

func (s *Server) handleRecordsRemoveLast(w http.ResponseWriter, r *http.Request) {
	if !s.store.RemoveLast() {
		http.Error(w, "no records to remove", http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, ClearResponse{Cleared: 1})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response",
			"error", err,
			"status", status,
		)
	}
}
