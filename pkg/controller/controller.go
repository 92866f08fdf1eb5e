// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package controller runs single and bulk prediction submissions against the
// prediction service and feeds the outcome into a session's view and
// notification queue.
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/metrics"
	"github.com/AccelByte/extend-churn-console/pkg/notify"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/upload"
	"github.com/AccelByte/extend-churn-console/pkg/view"
)

const defaultRequestTimeout = 30 * time.Second

// Notification texts.
const (
	MsgPredictionSuccessful = "Prediction successful!"
	MsgPredictionFailed     = "Prediction failed"
	MsgBulkFailed           = "Bulk prediction failed"
	msgProcessedRecords     = "Processed %d records"
	msgSuperseded           = "%s (superseded by a newer submission)"
)

// SinglePredictor scores one feature record.
type SinglePredictor interface {
	PredictChurn(ctx context.Context, payload feature.Payload) (*predictor.PredictionResult, error)
}

// BulkPredictor scores every record of an uploaded file.
type BulkPredictor interface {
	PredictBulkChurn(ctx context.Context, file upload.File) (*predictor.BulkResponse, error)
}

// Outcome describes one completed submission attempt.
type Outcome struct {
	// Generation is the token issued for the request, 0 if no request was sent.
	Generation uint64 `json:"generation"`
	// Applied reports whether the response replaced the view.
	Applied bool `json:"applied"`
	// Result is the view after the response was applied, nil otherwise.
	Result       *view.View          `json:"result,omitempty"`
	Notification notify.Notification `json:"notification"`
}

// Sink is where a controller publishes its results.
type Sink struct {
	Store         *view.Store
	Notifications *notify.Queue
}

func (s Sink) notify(level notify.Level, text string) notify.Notification {
	return s.Notifications.Push(level, text)
}

// notifyCompleted posts the notification of a successful response. A stale
// response gets an info-level notice that its results are not shown.
func (s Sink) notifyCompleted(out Outcome, text string) notify.Notification {
	if !out.Applied {
		return s.notify(notify.LevelInfo, fmt.Sprintf(msgSuperseded, text))
	}
	return s.notify(notify.LevelSuccess, text)
}

// apply publishes u under token and fills the outcome accordingly.
func (s Sink) apply(token uint64, u view.Update) Outcome {
	out := Outcome{Generation: token}
	if !s.Store.Apply(token, u) {
		metrics.StaleResponsesTotal.WithLabelValues(string(u.Mode)).Inc()
		return out
	}
	out.Applied = true
	v := s.Store.Snapshot()
	out.Result = &v
	return out
}

func requestTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultRequestTimeout
	}
	return d
}

func observe(mode view.Mode, outcome string, start time.Time) {
	metrics.SubmissionsTotal.WithLabelValues(string(mode), outcome).Inc()
	if !start.IsZero() {
		metrics.SubmissionDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	}
}
