package tui

import (
	"time"
)

// Config holds TUI configuration
type Config struct {
	ServerURL       string
	RefreshInterval time.Duration
	User            string
	Password        string
}

// Model represents the TUI state
type Model struct {
	config Config

	// Data from API
	status  *StatusData
	stats   *StatsData
	records []RecordData

	// UI state
	width       int
	height      int
	loading     bool
	err         error
	lastUpdated time.Time

	// Table scroll position
	tableOffset int
}

// StatusData is the /status payload.
type StatusData struct {
	Name          string       `json:"name"`
	Version       string       `json:"version"`
	UptimeSeconds float64      `json:"uptime_seconds"`
	Records       int          `json:"records"`
	Models        []ModelData  `json:"models"`
	System        SystemStatus `json:"system"`
}

type ModelData struct {
	Pipeline string `json:"pipeline"`
	Seed     int64  `json:"seed"`
	Samples  int    `json:"samples"`
	Model    string `json:"model"`
}

type SystemStatus struct {
	CPUPercent   float64 `json:"cpu_percent"`
	MemPercent   float64 `json:"mem_percent"`
	MemUsedMB    float64 `json:"mem_used_mb"`
	MemTotalMB   float64 `json:"mem_total_mb"`
	ProcessRSSMB float64 `json:"process_rss_mb"`
	Goroutines   int     `json:"goroutines"`
}

// StatsData is the /stats payload.
type StatsData struct {
	Total    int     `json:"total"`
	Alert    int     `json:"alert"`
	Fatigued int     `json:"fatigued"`
	AvgScore float64 `json:"avg_score"`
}

// RecordData is one entry of the /records payload.
type RecordData struct {
	Timestamp   time.Time `json:"timestamp"`
	Driver      string    `json:"driver"`
	Score       float64   `json:"score"`
	Label       string    `json:"label"`
	Probability float64   `json:"probability"`
	Risk        string    `json:"risk"`
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}
