package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLoggingMiddleware logs request start and completion with the
// chi request ID.
func (s *Server) RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		s.logger.Printf(
			"request_start method=%s path=%s request_id=%s remote_addr=%s",
			r.Method, r.URL.Path, requestID, r.RemoteAddr,
		)

		next.ServeHTTP(ww, r)

		s.logger.Printf(
			"request_completed method=%s path=%s status=%d duration=%v request_id=%s bytes_written=%d",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), requestID, ww.BytesWritten(),
		)
	})
}

// CORSMiddleware handles CORS headers for the mobile client's webview
// debug builds.
func (s *Server) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin guards curation and admin endpoints with the configured
// bearer token. An unconfigured token disables the endpoints outright.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminToken == "" {
			s.errorHandler.HandleError(w, r,
				NewError(ErrTypeUnauthorized, "Admin endpoints are disabled").Build(),
				http.StatusForbidden)
			return
		}

		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if auth == "" || token == auth ||
			subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			s.errorHandler.HandleError(w, r,
				NewError(ErrTypeUnauthorized, "Invalid or missing admin token").Build(),
				http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
