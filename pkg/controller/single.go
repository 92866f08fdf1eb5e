// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package controller

import (
	"context"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/common"
	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/metrics"
	"github.com/AccelByte/extend-churn-console/pkg/notify"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/view"
)

// Single submits one feature record at a time.
type Single struct {
	guard     guard
	predictor SinglePredictor
	sink      Sink
	timeout   time.Duration
}

// NewSingle creates a single-submission controller. A non-positive timeout
// uses the default of 30 seconds.
func NewSingle(p SinglePredictor, sink Sink, timeout time.Duration) *Single {
	return &Single{
		predictor: p,
		sink:      sink,
		timeout:   requestTimeout(timeout),
	}
}

// Loading reports whether a request is in flight.
func (c *Single) Loading() bool {
	return c.guard.Loading()
}

// Submit coerces record, sends it to the prediction service and publishes
// the result. Every completed attempt posts exactly one notification.
func (c *Single) Submit(ctx context.Context, record feature.Record) (Outcome, error) {
	if !c.guard.TryAcquire() {
		metrics.RejectedSubmissionsTotal.WithLabelValues(string(view.ModeSingle), metrics.ReasonInFlight).Inc()
		return Outcome{}, ErrSubmissionInFlight
	}
	defer c.guard.Release()

	scope := common.NewScope(ctx, "controller.single.submit")
	defer scope.Finish()

	payload, err := record.ToPayload()
	if err != nil {
		scope.TraceError(err)
		scope.Log.Warnf("single submission rejected: %v", err)
		observe(view.ModeSingle, metrics.OutcomeValidationError, time.Time{})
		return Outcome{Notification: c.sink.notify(notify.LevelError, err.Error())}, err
	}

	token := c.sink.Store.Issue()
	scope.SetAttributes("generation", token)

	reqCtx, cancel := context.WithTimeout(scope.Ctx, c.timeout)
	defer cancel()

	start := time.Now()
	res, err := c.predictor.PredictChurn(reqCtx, payload)
	if err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("single prediction failed: %v", err)
		observe(view.ModeSingle, metrics.OutcomeTransportError, start)
		n := c.sink.notify(notify.LevelError, predictor.MessageOr(err, MsgPredictionFailed))
		return Outcome{Generation: token, Notification: n}, err
	}

	result := *res
	if !result.CustomerID.Valid {
		if id, ok := record.CustomerID(); ok {
			result.CustomerID = predictor.NewCustomerID(id)
		}
	}

	out := c.sink.apply(token, view.Update{
		Mode:    view.ModeSingle,
		Results: []predictor.PredictionResult{result},
	})
	if !out.Applied {
		scope.TraceEvent("stale response discarded")
	}

	if result.Status == predictor.StatusError {
		scope.Log.Warnf("prediction service reported an error: %s", result.Detail)
		observe(view.ModeSingle, metrics.OutcomeServiceError, start)
		out.Notification = c.sink.notify(notify.LevelError, firstNonEmpty(result.Message, result.Detail, MsgPredictionFailed))
		return out, nil
	}

	observe(view.ModeSingle, metrics.OutcomeSuccess, start)
	out.Notification = c.sink.notifyCompleted(out, MsgPredictionSuccessful)
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
