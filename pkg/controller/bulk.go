// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/common"
	"github.com/AccelByte/extend-churn-console/pkg/metrics"
	"github.com/AccelByte/extend-churn-console/pkg/notify"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/upload"
	"github.com/AccelByte/extend-churn-console/pkg/view"
)

// Bulk submits one uploaded file at a time.
type Bulk struct {
	guard     guard
	predictor BulkPredictor
	sink      Sink
	policy    upload.Policy
	timeout   time.Duration
}

// NewBulk creates a bulk-ingestion controller.
func NewBulk(p BulkPredictor, sink Sink, policy upload.Policy, timeout time.Duration) *Bulk {
	return &Bulk{
		predictor: p,
		sink:      sink,
		policy:    policy,
		timeout:   requestTimeout(timeout),
	}
}

// Loading reports whether a request is in flight.
func (c *Bulk) Loading() bool {
	return c.guard.Loading()
}

// Submit gates files through the upload policy, sends the selected file to
// the prediction service and publishes results and analytics together.
// Rows the service could not score are kept as error rows.
func (c *Bulk) Submit(ctx context.Context, files []upload.File) (Outcome, error) {
	if !c.guard.TryAcquire() {
		metrics.RejectedSubmissionsTotal.WithLabelValues(string(view.ModeBulk), metrics.ReasonInFlight).Inc()
		return Outcome{}, ErrSubmissionInFlight
	}
	defer c.guard.Release()

	scope := common.NewScope(ctx, "controller.bulk.submit")
	defer scope.Finish()

	file, err := c.policy.Select(files)
	if err != nil {
		scope.TraceError(err)
		scope.Log.Warnf("bulk upload rejected: %v", err)
		observe(view.ModeBulk, metrics.OutcomeValidationError, time.Time{})
		return Outcome{Notification: c.sink.notify(notify.LevelError, err.Error())}, err
	}

	token := c.sink.Store.Issue()
	scope.SetAttributes("generation", token)
	scope.SetAttributes("file", file.Name)

	reqCtx, cancel := context.WithTimeout(scope.Ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.predictor.PredictBulkChurn(reqCtx, file)
	if err != nil {
		scope.TraceError(err)
		scope.Log.Errorf("bulk prediction of %s failed: %v", file.Name, err)
		observe(view.ModeBulk, metrics.OutcomeTransportError, start)
		n := c.sink.notify(notify.LevelError, predictor.MessageOr(err, MsgBulkFailed))
		return Outcome{Generation: token, Notification: n}, err
	}

	analytics := resp.Analytics
	out := c.sink.apply(token, view.Update{
		Mode:      view.ModeBulk,
		Results:   resp.Results,
		Analytics: &analytics,
	})
	if !out.Applied {
		scope.TraceEvent("stale response discarded")
	}

	total := analytics.Summary.TotalRecords
	scope.SetAttributes("total_records", total)
	scope.Log.Infof("bulk prediction of %s processed %d records", file.Name, total)
	observe(view.ModeBulk, metrics.OutcomeSuccess, start)
	out.Notification = c.sink.notifyCompleted(out, fmt.Sprintf(msgProcessedRecords, total))
	return out, nil
}
