package middleware

import (
	"net/http"
)

type ProgressTracker interface {
	Start()
	Finish()
}

// Progress drives the tracker around every mutating request.
func Progress(t ProgressTracker, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		t.Start()
		defer t.Finish()

		next.ServeHTTP(w, r)
	})
}
