// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package view

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
)

func prob(v float64) *float64 { return &v }

func TestNewRow(t *testing.T) {
	tests := []struct {
		name           string
		result         predictor.PredictionResult
		expectedID     string
		expectedPred   string
		expectedTone   Tone
		expectedLabel  string
		expectedBand   Band
		expectedStatus string
	}{
		{
			name: "churn with probability",
			result: predictor.PredictionResult{
				CustomerID:  predictor.NewCustomerID(7),
				Prediction:  predictor.PredictionYes,
				Probability: prob(0.82),
				Status:      predictor.StatusSuccess,
			},
			expectedID:     "7",
			expectedPred:   "Yes",
			expectedTone:   ToneChurn,
			expectedLabel:  "82%",
			expectedBand:   BandHigh,
			expectedStatus: "success",
		},
		{
			name: "retain medium risk",
			result: predictor.PredictionResult{
				Prediction:  predictor.PredictionNo,
				Probability: prob(0.3),
				Status:      predictor.StatusSuccess,
			},
			expectedID:     Placeholder,
			expectedPred:   "No",
			expectedTone:   ToneRetain,
			expectedLabel:  "30%",
			expectedBand:   BandMedium,
			expectedStatus: "success",
		},
		{
			name: "low risk",
			result: predictor.PredictionResult{
				Prediction:  predictor.PredictionNo,
				Probability: prob(0.1234),
				Status:      predictor.StatusSuccess,
			},
			expectedID:     Placeholder,
			expectedPred:   "No",
			expectedTone:   ToneRetain,
			expectedLabel:  "12.34%",
			expectedBand:   BandLow,
			expectedStatus: "success",
		},
		{
			name: "error row",
			result: predictor.PredictionResult{
				CustomerID:  predictor.CustomerID{Value: "C-9", Valid: true},
				Probability: prob(0),
				Status:      predictor.StatusError,
				Detail:      "bad row",
			},
			expectedID:     "C-9",
			expectedPred:   NotAvailable,
			expectedTone:   ToneUnknown,
			expectedLabel:  Placeholder,
			expectedBand:   "",
			expectedStatus: "error",
		},
		{
			name: "absent probability",
			result: predictor.PredictionResult{
				Prediction: predictor.PredictionYes,
				Status:     predictor.StatusSuccess,
			},
			expectedID:     Placeholder,
			expectedPred:   "Yes",
			expectedTone:   ToneChurn,
			expectedLabel:  Placeholder,
			expectedBand:   "",
			expectedStatus: "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewRow(tt.result, DefaultBands())

			if row.CustomerID != tt.expectedID {
				t.Errorf("CustomerID = %q, expected %q", row.CustomerID, tt.expectedID)
			}
			if row.Prediction != tt.expectedPred {
				t.Errorf("Prediction = %q, expected %q", row.Prediction, tt.expectedPred)
			}
			if row.Tone != tt.expectedTone {
				t.Errorf("Tone = %q, expected %q", row.Tone, tt.expectedTone)
			}
			if row.ProbabilityLabel != tt.expectedLabel {
				t.Errorf("ProbabilityLabel = %q, expected %q", row.ProbabilityLabel, tt.expectedLabel)
			}
			if row.Band != tt.expectedBand {
				t.Errorf("Band = %q, expected %q", row.Band, tt.expectedBand)
			}
			if row.Status != tt.expectedStatus {
				t.Errorf("Status = %q, expected %q", row.Status, tt.expectedStatus)
			}
		})
	}
}

func TestStore_ApplyLatestOnly(t *testing.T) {
	s := NewStore(DefaultBands())

	bulkToken := s.Issue()
	singleToken := s.Issue()

	if singleToken <= bulkToken {
		t.Fatalf("tokens not increasing: %d then %d", bulkToken, singleToken)
	}

	applied := s.Apply(singleToken, Update{
		Mode:    ModeSingle,
		Results: []predictor.PredictionResult{{Prediction: predictor.PredictionNo, Status: predictor.StatusSuccess}},
	})
	if !applied {
		t.Fatal("expected latest token to apply")
	}

	applied = s.Apply(bulkToken, Update{
		Mode:      ModeBulk,
		Results:   make([]predictor.PredictionResult, 3),
		Analytics: &predictor.AnalyticsSummary{Summary: predictor.Summary{TotalRecords: 3}},
	})
	if applied {
		t.Fatal("expected stale token to be discarded")
	}

	v := s.Snapshot()
	if v.Generation != singleToken {
		t.Errorf("Generation = %d, expected %d", v.Generation, singleToken)
	}
	if v.Origin != ModeSingle {
		t.Errorf("Origin = %q, expected %q", v.Origin, ModeSingle)
	}
	if len(v.Results) != 1 {
		t.Errorf("len(Results) = %d, expected 1", len(v.Results))
	}
	if v.Analytics != nil {
		t.Error("Analytics should be absent after a single submission")
	}
}

func TestStore_UpdatedAt(t *testing.T) {
	s := NewStore(DefaultBands())

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "updated_at") {
		t.Errorf("empty view should not carry updated_at: %s", data)
	}

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	s.Apply(s.Issue(), Update{Mode: ModeSingle})

	v := s.Snapshot()
	if v.UpdatedAt == nil || !v.UpdatedAt.Equal(fixed) {
		t.Fatalf("UpdatedAt = %v, expected %v", v.UpdatedAt, fixed)
	}

	*v.UpdatedAt = time.Time{}
	if again := s.Snapshot(); !again.UpdatedAt.Equal(fixed) {
		t.Errorf("snapshot shares UpdatedAt with the store: %v", again.UpdatedAt)
	}
}

func TestStore_BulkReplacesResultsAndAnalyticsTogether(t *testing.T) {
	s := NewStore(DefaultBands())

	first := s.Issue()
	s.Apply(first, Update{
		Mode:      ModeBulk,
		Results:   make([]predictor.PredictionResult, 2),
		Analytics: &predictor.AnalyticsSummary{Summary: predictor.Summary{TotalRecords: 2}},
	})

	second := s.Issue()
	s.Apply(second, Update{
		Mode:      ModeBulk,
		Results:   make([]predictor.PredictionResult, 500),
		Analytics: &predictor.AnalyticsSummary{Summary: predictor.Summary{TotalRecords: 500}},
	})

	v := s.Snapshot()
	if len(v.Results) != 500 {
		t.Errorf("len(Results) = %d, expected 500", len(v.Results))
	}
	if v.Analytics == nil || v.Analytics.Summary.TotalRecords != 500 {
		t.Errorf("Analytics = %+v, expected total_records 500", v.Analytics)
	}
}

func TestStore_SingleClearsPreviousAnalytics(t *testing.T) {
	s := NewStore(DefaultBands())

	s.Apply(s.Issue(), Update{
		Mode:      ModeBulk,
		Results:   make([]predictor.PredictionResult, 2),
		Analytics: &predictor.AnalyticsSummary{Summary: predictor.Summary{TotalRecords: 2}},
	})
	s.Apply(s.Issue(), Update{
		Mode:    ModeSingle,
		Results: make([]predictor.PredictionResult, 1),
	})

	if s.Snapshot().Analytics != nil {
		t.Error("Analytics should be cleared by a single submission")
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore(DefaultBands())
	s.Apply(s.Issue(), Update{
		Mode: ModeSingle,
		Results: []predictor.PredictionResult{{
			Prediction:  predictor.PredictionYes,
			Probability: prob(0.5),
			Status:      predictor.StatusSuccess,
		}},
	})

	v := s.Snapshot()
	*v.Results[0].Probability = 0.99
	v.Results[0].CustomerID = "tampered"

	again := s.Snapshot()
	if *again.Results[0].Probability != 0.5 {
		t.Errorf("Probability = %v, expected store to be unaffected", *again.Results[0].Probability)
	}
	if again.Results[0].CustomerID != Placeholder {
		t.Errorf("CustomerID = %q, expected store to be unaffected", again.Results[0].CustomerID)
	}
}

func TestStore_ConcurrentIssueApply(t *testing.T) {
	s := NewStore(DefaultBands())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := s.Issue()
			s.Apply(token, Update{Mode: ModeSingle, Results: make([]predictor.PredictionResult, 1)})
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	v := s.Snapshot()
	if v.Generation > s.Latest() {
		t.Errorf("Generation %d exceeds latest %d", v.Generation, s.Latest())
	}
	if s.Latest() != 50 {
		t.Errorf("Latest() = %d, expected 50", s.Latest())
	}
}

func TestNewAnalytics_Display(t *testing.T) {
	a := NewAnalytics(predictor.AnalyticsSummary{
		ProbabilityStats: predictor.ProbabilityStats{Average: prob(0.456), Max: prob(0.9)},
	})

	if a.Display.Average != "0.46" {
		t.Errorf("Display.Average = %q, expected %q", a.Display.Average, "0.46")
	}
	if a.Display.Max != "0.90" {
		t.Errorf("Display.Max = %q, expected %q", a.Display.Max, "0.90")
	}
	if a.Display.Min != Placeholder {
		t.Errorf("Display.Min = %q, expected %q", a.Display.Min, Placeholder)
	}
}
