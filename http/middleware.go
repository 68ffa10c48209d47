package http

import (
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"go-smart-calc"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-Id"

func post(next http.Handler) http.Handler {
	return method(http.MethodPost, next)
}

func get(next http.Handler) http.Handler {
	return method(http.MethodGet, next)
}

func method(m string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			rw.Header().Set("Allow", m)
			writeJSON(rw, http.StatusMethodNotAllowed, errorResponse{m + " only"})
			return
		}
		next.ServeHTTP(rw, r)
	})
}

// requestID keeps a client supplied id or assigns a fresh one
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		rw.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(rw, r)
	})
}

// limit rejects requests once limiter has no tokens left
func limit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeJSON(rw, http.StatusTooManyRequests, errorResponse{smartcalc.MsgError})
			return
		}
		next.ServeHTTP(rw, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(logger log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
		defer func(begin time.Time) {
			logger.Log(
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"request_id", r.Header.Get(RequestIDHeader),
				"took", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(rec, r)
	})
}
