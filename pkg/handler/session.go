// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AccelByte/extend-churn-console/pkg/console"
	"github.com/AccelByte/extend-churn-console/pkg/controller"
	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// SubmissionResponse is the body of both predict endpoints.
type SubmissionResponse struct {
	Outcome controller.Outcome `json:"outcome"`
	Session console.Snapshot   `json:"session"`
	Error   *ErrorResponse     `json:"error,omitempty"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*console.Session, bool) {
	id := mux.Vars(r)["id"]
	s, err := h.sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, CodeSessionNotFound, fmt.Errorf("%w: %s", err, id))
		return nil, false
	}
	return s, true
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	writeJSON(w, http.StatusCreated, s.Snapshot())
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.sessions.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, CodeSessionNotFound, fmt.Errorf("%w: %s", err, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.SetMode(console.Mode(req.Mode)); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

// UpdateForm applies a partial form edit. String values are stored as-is,
// numbers by their literal text, null as an empty value. Unknown fields
// reject the whole edit.
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	values := make(map[string]string, len(body))
	for field, raw := range body {
		if !feature.IsKnownField(field) {
			writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("%w: %s", feature.ErrUnknownField, field))
			return
		}
		values[field] = rawFieldValue(raw)
	}

	for field, value := range values {
		if err := s.UpdateField(field, value); err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func rawFieldValue(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}

func (h *Handler) ResetForm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ResetForm()
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	out, err := s.SubmitSingle(r.Context())
	writeSubmission(w, s, out, err)
}

func (h *Handler) PredictBulk(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("invalid multipart body: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var files []upload.File
	for _, fh := range r.MultipartForm.File["file"] {
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("failed to read %s: %w", fh.Filename, err))
			return
		}
		defer f.Close()

		files = append(files, upload.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}

	out, err := s.SubmitBulk(r.Context(), files)
	writeSubmission(w, s, out, err)
}

// writeSubmission answers a predict call. Apart from an in-flight or
// inactive-mode rejection, the body carries the session and the notification
// the attempt produced.
func writeSubmission(w http.ResponseWriter, s *console.Session, out controller.Outcome, err error) {
	status, code := submissionStatus(err)
	if errors.Is(err, controller.ErrSubmissionInFlight) || errors.Is(err, console.ErrModeInactive) {
		writeError(w, status, code, err)
		return
	}

	resp := SubmissionResponse{Outcome: out, Session: s.Snapshot()}
	if err != nil {
		resp.Error = &ErrorResponse{Error: code, Message: err.Error()}
		logrus.Infof("submission in session %s failed: %v", s.ID, err)
	}
	writeJSON(w, status, resp)
}

func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	nid := mux.Vars(r)["nid"]
	if !s.DismissNotification(nid) {
		writeError(w, http.StatusNotFound, CodeNotFound, fmt.Errorf("notification not found: %s", nid))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
