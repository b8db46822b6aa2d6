package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"handrank-server/internal/config"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

// RequestIDHeader carries the id used to trace a request through the logs
const RequestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
}

type muxConfig struct {
	// maxBatch is the most hands a single batch request may evaluate
	maxBatch int

	// webSocket enables the streaming endpoint
	webSocket bool
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: muxConfig{
			maxBatch:  cfg.MaxBatch,
			webSocket: cfg.WebSocket.Enabled,
		},
	}

	this.Router.Use(this.requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/compare").Handler(this.postCompare())
	r.Methods(http.MethodPost).Path("/batch").Handler(this.postBatch())

	if this.config.webSocket {
		r.Methods(http.MethodGet).Path("/evaluate/ws").Handler(this.getEvaluateWS())
	}

	return this
}

// requestIDMiddleware tags every request with an id, reusing the caller's when provided
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		logger := logrus.WithField("requestID", id)
		newCtx := context.WithValue(r.Context(), ctxLoggerKey, logger)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// loggerFromRequest returns the request scoped logger
func loggerFromRequest(r *http.Request) *logrus.Entry {
	if logger, ok := r.Context().Value(ctxLoggerKey).(*logrus.Entry); ok {
		return logger
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
