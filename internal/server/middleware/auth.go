package middleware

import (
	"crypto/subtle"
	"net/http"
	"sync"
)

// AuthConfig holds Basic Auth credentials. Safe for concurrent reads and
// updates.
type AuthConfig struct {
	mu       sync.RWMutex
	Enabled  bool
	User     string
	Password string
}

// Update replaces the credentials in place.
func (c *AuthConfig) Update(enabled bool, user, password string) {
	c.mu.Lock()
	c.Enabled = enabled
	c.User = user
	c.Password = password
	c.mu.Unlock()
}

func (c *AuthConfig) get() (enabled bool, user, password string) {
	c.mu.RLock()
	enabled = c.Enabled
	user = c.User
	password = c.Password
	c.mu.RUnlock()
	return
}

// Auth creates a Basic Auth middleware. Requests to excludePaths pass
// through unauthenticated.
func Auth(config *AuthConfig, excludePaths ...string) Middleware {
	excluded := make(map[string]bool, len(excludePaths))
	for _, path := range excludePaths {
		excluded[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enabled, configUser, configPass := config.get()

			if !enabled || excluded[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			// Constant time comparison to prevent timing attacks
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(configUser)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(configPass)) == 1

			if !userMatch || !passMatch {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="roadguard"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
