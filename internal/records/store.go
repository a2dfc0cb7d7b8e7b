// Package records keeps the in-memory log of completed assessments for the
// dashboard and analytics endpoints. Durable persistence is deliberately the
// caller's concern; the store only exports CSV on demand.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/risk"
)

// Record is one stored assessment.
type Record struct {
	Timestamp    time.Time         `json:"timestamp"`
	Driver       string            `json:"driver"`
	SleepHours   float64           `json:"sleep_hours"`
	DrivingHours float64           `json:"driving_hours"`
	CaffeineCups float64           `json:"caffeine_cups"`
	RestBreaks   float64           `json:"rest_breaks"`
	StressLevel  int               `json:"stress_level"`
	TimeOfDay    fatigue.TimeOfDay `json:"time_of_day"`
	Age          int               `json:"age"`
	Score        float64           `json:"score"`
	Label        fatigue.Label     `json:"label"`
	Probability  float64           `json:"probability"`
	Risk         risk.Level        `json:"risk"`
}

// Stats summarizes the stored assessments.
type Stats struct {
	Total    int     `json:"total"`
	Alert    int     `json:"alert"`
	Fatigued int     `json:"fatigued"`
	AvgScore float64 `json:"avg_score"`
}

// Store is a capacity-bounded, mutex-guarded assessment log. When full, the
// oldest record is dropped.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	capacity int
}

// DefaultCapacity bounds the store when no capacity is configured.
const DefaultCapacity = 1000

// New creates a store holding at most capacity records.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Add appends a record, evicting the oldest if the store is full.
func (s *Store) Add(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) >= s.capacity {
		s.records = s.records[1:]
	}
	s.records = append(s.records, r)
}

// List returns a copy of all records, oldest first.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Latest returns the most recent record, if any.
func (s *Store) Latest() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}

// Stats summarizes the current contents.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.records)}
	sum := 0.0
	for _, r := range s.records {
		if r.Label == fatigue.LabelFatigued {
			st.Fatigued++
		} else {
			st.Alert++
		}
		sum += r.Score
	}
	if st.Total > 0 {
		st.AvgScore = sum / float64(st.Total)
	}
	return st
}

// Clear removes all records.
func (s *Store) Clear() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

// RemoveLast drops the most recent record. Returns false if the store was
// empty.
func (s *Store) RemoveLast() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return false
	}
	s.records = s.records[:len(s.records)-1]
	return true
}

// csvHeader is the export column order.
var csvHeader = []string{
	"timestamp", "driver", "sleep_hours", "driving_hours", "caffeine_cups",
	"rest_breaks", "stress_level", "time_of_day", "age", "score", "label",
	"probability", "risk",
}

// ExportCSV writes all records as CSV, oldest first.
func (s *Store) ExportCSV(w io.Writer) error {
	records := s.List()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Timestamp.Format(time.RFC3339),
			r.Driver,
			strconv.FormatFloat(r.SleepHours, 'f', 2, 64),
			strconv.FormatFloat(r.DrivingHours, 'f', 2, 64),
			strconv.FormatFloat(r.CaffeineCups, 'f', 2, 64),
			strconv.FormatFloat(r.RestBreaks, 'f', 2, 64),
			strconv.Itoa(r.StressLevel),
			string(r.TimeOfDay),
			strconv.Itoa(r.Age),
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			string(r.Label),
			strconv.FormatFloat(r.Probability, 'f', 4, 64),
			string(r.Risk),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
