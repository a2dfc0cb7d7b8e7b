package records

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/risk"
)

func sampleRecord(driver string, label fatigue.Label, score float64) Record {
	return Record{
		Timestamp:    time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC),
		Driver:       driver,
		SleepHours:   6,
		DrivingHours: 8,
		CaffeineCups: 1,
		RestBreaks:   2,
		StressLevel:  6,
		TimeOfDay:    fatigue.TimeNight,
		Age:          41,
		Score:        score,
		Label:        label,
		Probability:  0.7,
		Risk:         risk.LevelModerate,
	}
}

func TestStore_AddAndList(t *testing.T) {
	s := New(10)
	s.Add(sampleRecord("a", fatigue.LabelAlert, 10))
	s.Add(sampleRecord("b", fatigue.LabelFatigued, 60))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].Driver != "a" || list[1].Driver != "b" {
		t.Error("records not in insertion order")
	}
}

func TestStore_CapacityEvictsOldest(t *testing.T) {
	s := New(2)
	s.Add(sampleRecord("a", fatigue.LabelAlert, 10))
	s.Add(sampleRecord("b", fatigue.LabelAlert, 20))
	s.Add(sampleRecord("c", fatigue.LabelAlert, 30))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].Driver != "b" || list[1].Driver != "c" {
		t.Errorf("oldest record not evicted: %s, %s", list[0].Driver, list[1].Driver)
	}
}

func TestStore_Stats(t *testing.T) {
	s := New(10)
	s.Add(sampleRecord("a", fatigue.LabelAlert, 10))
	s.Add(sampleRecord("b", fatigue.LabelFatigued, 50))

	st := s.Stats()
	if st.Total != 2 || st.Alert != 1 || st.Fatigued != 1 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.AvgScore != 30 {
		t.Errorf("avg score = %f, want 30", st.AvgScore)
	}
}

func TestStore_Latest(t *testing.T) {
	s := New(10)
	if _, ok := s.Latest(); ok {
		t.Error("empty store should report no latest record")
	}

	s.Add(sampleRecord("a", fatigue.LabelAlert, 10))
	s.Add(sampleRecord("b", fatigue.LabelAlert, 20))
	latest, ok := s.Latest()
	if !ok || latest.Driver != "b" {
		t.Errorf("latest = %+v, ok = %v", latest, ok)
	}
}

func TestStore_ClearAndRemoveLast(t *testing.T) {
	s := New(10)
	if s.RemoveLast() {
		t.Error("RemoveLast on empty store should return false")
	}

	s.Add(sampleRecord("a", fatigue.LabelAlert, 10))
	s.Add(sampleRecord("b", fatigue.LabelAlert, 20))

	if !s.RemoveLast() {
		t.Error("RemoveLast should succeed")
	}
	if got := s.Stats().Total; got != 1 {
		t.Errorf("expected 1 record after RemoveLast, got %d", got)
	}

	s.Clear()
	if got := s.Stats().Total; got != 0 {
		t.Errorf("expected empty store after Clear, got %d", got)
	}
}

func TestStore_ExportCSV(t *testing.T) {
	s := New(10)
	s.Add(sampleRecord("driver 1", fatigue.LabelFatigued, 62.5))

	var buf bytes.Buffer
	if err := s.ExportCSV(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,driver,sleep_hours") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "driver 1") || !strings.Contains(lines[1], "62.50") {
		t.Errorf("unexpected row: %s", lines[1])
	}
	if !strings.Contains(lines[1], "fatigued") {
		t.Errorf("label missing from row: %s", lines[1])
	}
}
