package httphandler

import (
	"net/http"

	"github.com/techmart/storefront/pkg/latency"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// SimulateLatency delays every request to emulate a network round trip.
// A zero-duration simulator passes requests through untouched.
func SimulateLatency(sim latency.Simulator, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if err := sim.Wait(r.Context()); err != nil {
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}
