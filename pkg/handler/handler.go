// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package handler exposes console sessions over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/console"
	"github.com/AccelByte/extend-churn-console/pkg/controller"
	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxUploadMemory is how much of a multipart body is held in memory; the
// rest spills to temporary files.
const maxUploadMemory = 32 << 20

// Error codes of the JSON error envelope.
const (
	CodeBadRequest        = "bad_request"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeValidation        = "validation_failed"
	CodeUpstream          = "upstream_failed"
	CodeUpstreamTimeout   = "upstream_timeout"
	CodeInternal          = "internal_error"
	CodeSessionNotFound   = "session_not_found"
	CodeSubmissionRunning = "submission_in_flight"
)

// TrendReporter serves the trend feed.
type TrendReporter interface {
	Report(ctx context.Context) (*predictor.TrendReport, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	sessions *console.Manager
	trends   TrendReporter
}

// NewHandler creates a new HTTP handler. trends may be nil, in which case
// the trend endpoint answers 404.
func NewHandler(sessions *console.Manager, trends TrendReporter) *Handler {
	return &Handler{
		sessions: sessions,
		trends:   trends,
	}
}

// SetupRoutes configures HTTP routes
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", h.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", h.DeleteSession).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/mode", h.SetMode).Methods("PUT")
	api.HandleFunc("/sessions/{id}/form", h.UpdateForm).Methods("PATCH")
	api.HandleFunc("/sessions/{id}/form/reset", h.ResetForm).Methods("POST")
	api.HandleFunc("/sessions/{id}/predict", h.Predict).Methods("POST")
	api.HandleFunc("/sessions/{id}/predict/bulk", h.PredictBulk).Methods("POST")
	api.HandleFunc("/sessions/{id}/notifications/{nid}", h.DismissNotification).Methods("DELETE")
	api.HandleFunc("/template", h.DownloadTemplate).Methods("GET")
	api.HandleFunc("/trends", h.GetTrends).Methods("GET")

	return router
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"sessions":  h.sessions.Count(),
	})
}

// ErrorResponse is the body of every non-2xx answer that carries no session state.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.Errorf("failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	if status >= http.StatusInternalServerError {
		logrus.Errorf("request failed with %d: %v", status, err)
	} else {
		logrus.Debugf("request rejected with %d: %v", status, err)
	}
	writeJSON(w, status, ErrorResponse{Error: code, Message: err.Error()})
}

// submissionStatus maps a submission error to the response status and code.
func submissionStatus(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, controller.ErrSubmissionInFlight):
		return http.StatusConflict, CodeSubmissionRunning
	case errors.Is(err, console.ErrModeInactive):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, feature.ErrInvalidRecord), errors.Is(err, upload.ErrInvalidUpload):
		return http.StatusUnprocessableEntity, CodeValidation
	case predictor.IsTimeout(err):
		return http.StatusGatewayTimeout, CodeUpstreamTimeout
	case errors.Is(err, predictor.ErrTransport):
		return http.StatusBadGateway, CodeUpstream
	}
	return http.StatusInternalServerError, CodeInternal
}
