package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/roadguard/roadguard/internal/config"
)

func TestServer_Integration(t *testing.T) {
	srv := testServer(t)

	if err := srv.Warmup(); err != nil {
		t.Fatalf("warmup failed: %v", err)
	}

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	t.Run("GET /", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}

		var info InfoResponse
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}

		if info.Name != "roadguard" {
			t.Errorf("expected name 'roadguard', got %s", info.Name)
		}
	})

	t.Run("GET /health", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/health")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("POST /assess", func(t *testing.T) {
		body := `{"driver":"dave","sleep_hours":5,"driving_hours":8,"stress_level":7,"time_of_day":"night","age":41}`
		resp, err := http.Post(ts.URL+"/assess", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("GET /status", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/status")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}

		var status StatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}

		if status.Records != 1 {
			t.Errorf("expected 1 record, got %d", status.Records)
		}
	})

	t.Run("GET /unknown", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/unknown")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
	})
}

func TestServer_ReloadConfig(t *testing.T) {
	srv := testServer(t)

	next := config.Default()
	next.Auth.Enabled = true
	next.Auth.User = "ops"
	next.Auth.Password = "rotated"
	srv.ReloadConfig(next)

	if got := srv.currentConfig(); got != next {
		t.Error("currentConfig should return the reloaded config")
	}

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after enabling auth via reload, got %d", resp.StatusCode)
	}
}

func TestServer_ReloadConfigConcurrent(t *testing.T) {
	srv := testServer(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			srv.ReloadConfig(config.Default())
		}
	}()

	for i := 0; i < 100; i++ {
		cfg := srv.currentConfig()
		if cfg == nil {
			t.Fatal("currentConfig returned nil during reload")
		}
	}
	<-done
}

func TestServer_AuthProtectsEndpoints(t *testing.T) {
	srv := testServer(t)
	srv.authConfig.Update(true, "admin", "secret")

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	// /health stays open.
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected /health to bypass auth, got %d", resp.StatusCode)
	}

	// /stats requires credentials.
	resp, err = http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without credentials, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/stats", nil)
	req.SetBasicAuth("admin", "secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with credentials, got %d", resp.StatusCode)
	}
}
