// Package server exposes the notification use case over HTTP so the platform's
// routing layer can hand off check notifications.
package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBytes bounds the size of a notification request body.
const maxRequestBytes = 1 << 20

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	notifyUseCase  interfaces.NotifyCheckUseCase
	metricsHandler http.Handler
	logger         interfaces.Logger
}

// New creates a new Server. metricsHandler may be nil.
func New(notifyUseCase interfaces.NotifyCheckUseCase, metricsHandler http.Handler, logger interfaces.Logger) *Server {
	return &Server{
		notifyUseCase:  notifyUseCase,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

// Router builds the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/notifications", s.handleNotify)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req dto.NotificationRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := s.notifyUseCase.Execute(r.Context(), interfaces.NotifyCheckParamsFromRequest(req))
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
		return
	}

	s.logger.Warn("Notification request failed",
		"requestID", middleware.GetReqID(r.Context()),
		"check", req.Check.ID,
		"error", err)

	var validationErr *errors.ValidationError
	var failedErr *errors.NotificationFailedError
	switch {
	case stderrors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	case stderrors.Is(err, errors.ErrNoChannel):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case stderrors.As(err, &failedErr):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
