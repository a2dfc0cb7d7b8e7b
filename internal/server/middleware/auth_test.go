package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authHandler(config *AuthConfig, excludePaths ...string) http.Handler {
	return Auth(config, excludePaths...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuth(t *testing.T) {
	config := &AuthConfig{
		Enabled:  true,
		User:     "admin",
		Password: "secret",
	}

	tests := []struct {
		name     string
		path     string
		user     string
		password string
		withAuth bool
		want     int
	}{
		{"valid credentials", "/assess", "admin", "secret", true, http.StatusOK},
		{"wrong password", "/assess", "admin", "wrong", true, http.StatusUnauthorized},
		{"wrong user", "/assess", "intruder", "secret", true, http.StatusUnauthorized},
		{"missing credentials", "/assess", "", "", false, http.StatusUnauthorized},
		{"excluded path without credentials", "/health", "", "", false, http.StatusOK},
	}

	handler := authHandler(config, "/health")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	handler := authHandler(&AuthConfig{Enabled: false})

	req := httptest.NewRequest(http.MethodGet, "/assess", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestAuth_ChallengeHeader(t *testing.T) {
	handler := authHandler(&AuthConfig{Enabled: true, User: "admin", Password: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/assess", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") == "" {
		t.Error("expected WWW-Authenticate header")
	}
}

func TestAuth_Update(t *testing.T) {
	config := &AuthConfig{Enabled: true, User: "admin", Password: "secret"}
	handler := authHandler(config)

	config.Update(true, "admin", "rotated")

	req := httptest.NewRequest(http.MethodGet, "/assess", nil)
	req.SetBasicAuth("admin", "secret")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("old password should be rejected after update, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/assess", nil)
	req.SetBasicAuth("admin", "rotated")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("new password should be accepted after update, got %d", w.Code)
	}
}
