package http

import (
	"net"
	"net/http"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverer turns a handler panic into a JSON 500 so the client always
// receives an error descriptor.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("Handler panicked", "panic", rec, "path", r.URL.Path)
			writeJSON(w, http.StatusInternalServerError, errorBody("Internal Server Error"))
		}()
		next.ServeHTTP(w, r)
	})
}

// rateLimit admits requests while the caller's budget lasts. Limiter
// failures let the request through.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		ok, err := s.limiter.Allow(r.Context(), key)
		if err != nil {
			s.logger.Warn("Rate limiter unavailable, admitting request", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			if s.metrics != nil {
				s.metrics.RateLimited()
			}
			s.logger.Info("Rate limited", "client", key)
			s.respond(w, http.StatusTooManyRequests, errorBody("Too Many Requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
