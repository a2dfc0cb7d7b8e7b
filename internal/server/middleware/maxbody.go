package middleware

import "net/http"

// DefaultMaxBodySize caps request bodies at 64 KB. Assessment and
// questionnaire payloads are small JSON objects.
const DefaultMaxBodySize = 64 << 10

// MaxBody limits the request body size for methods that carry one.
// A maxSize of 0 falls back to DefaultMaxBodySize.
func MaxBody(maxSize int64) Middleware {
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}
