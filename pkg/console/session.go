// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package console holds per-user console state: the submission mode, the
// single-record form, and the controllers that feed the shared results pane.
package console

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/controller"
	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/notify"
	"github.com/AccelByte/extend-churn-console/pkg/upload"
	"github.com/AccelByte/extend-churn-console/pkg/view"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Mode = view.Mode

const (
	ModeSingle = view.ModeSingle
	ModeBulk   = view.ModeBulk
)

// ParseMode validates a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSingle, ModeBulk:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Predictor is the prediction service as seen by a session.
type Predictor interface {
	controller.SinglePredictor
	controller.BulkPredictor
}

// Session is one console instance. Mode and form are guarded by mu; the
// controllers, view and notifications carry their own synchronization.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.RWMutex
	mode Mode
	form feature.Record
	cfg  *Config

	single        *controller.Single
	bulk          *controller.Bulk
	store         *view.Store
	notifications *notify.Queue
}

// NewSession creates a session in single mode with a fresh form.
func NewSession(p Predictor, cfg *Config, requestTimeout time.Duration) *Session {
	store := view.NewStore(cfg.Bands())
	queue := notify.NewQueue(cfg.Notifications.Capacity, cfg.Notifications.TTL)
	sink := controller.Sink{Store: store, Notifications: queue}

	return &Session{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		mode:          ModeSingle,
		form:          cfg.NewForm(),
		cfg:           cfg,
		single:        controller.NewSingle(p, sink, requestTimeout),
		bulk:          controller.NewBulk(p, sink, cfg.UploadPolicy(), requestTimeout),
		store:         store,
		notifications: queue,
	}
}

func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the visible submission path. Form edits are kept and a
// request in flight on the other path keeps running.
func (s *Session) SetMode(mode Mode) error {
	m, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != m {
		logrus.Debugf("session %s switched from %s to %s mode", s.ID, s.mode, m)
	}
	s.mode = m
	return nil
}

// UpdateField stores one raw form value. Values are only checked on submit.
func (s *Session) UpdateField(field, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.form.Set(field, raw)
	if err != nil {
		return err
	}
	s.form = next
	return nil
}

// ResetForm restores the configured defaults.
func (s *Session) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.cfg.NewForm()
}

// Form returns the current form.
func (s *Session) Form() feature.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

// SubmitSingle submits the current form.
func (s *Session) SubmitSingle(ctx context.Context) (controller.Outcome, error) {
	s.mu.RLock()
	mode, form := s.mode, s.form
	s.mu.RUnlock()

	if mode != ModeSingle {
		return controller.Outcome{}, fmt.Errorf("%w: %s", ErrModeInactive, ModeSingle)
	}
	return s.single.Submit(ctx, form)
}

// SubmitBulk submits an uploaded file.
func (s *Session) SubmitBulk(ctx context.Context, files []upload.File) (controller.Outcome, error) {
	if s.Mode() != ModeBulk {
		return controller.Outcome{}, fmt.Errorf("%w: %s", ErrModeInactive, ModeBulk)
	}
	return s.bulk.Submit(ctx, files)
}

func (s *Session) DismissNotification(id string) bool {
	return s.notifications.Dismiss(id)
}

// Loading is the per-mode loading state.
type Loading struct {
	Single bool `json:"single"`
	Bulk   bool `json:"bulk"`
}

// Snapshot is a point-in-time copy of everything the console renders.
type Snapshot struct {
	ID            string                `json:"id"`
	Mode          Mode                  `json:"mode"`
	Loading       Loading               `json:"loading"`
	Form          map[string]string     `json:"form"`
	View          view.View             `json:"view"`
	Notifications []notify.Notification `json:"notifications"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	mode, form := s.mode, s.form
	s.mu.RUnlock()

	return Snapshot{
		ID:   s.ID,
		Mode: mode,
		Loading: Loading{
			Single: s.single.Loading(),
			Bulk:   s.bulk.Loading(),
		},
		Form:          form.Values(),
		View:          s.store.Snapshot(),
		Notifications: s.notifications.List(),
	}
}
