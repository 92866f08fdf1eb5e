// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package predictor

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Prediction is the churn verdict for one customer.
type Prediction string

const (
	PredictionYes     Prediction = "Yes"
	PredictionNo      Prediction = "No"
	PredictionUnknown Prediction = ""
)

func parsePrediction(s string) Prediction {
	switch strings.TrimSpace(s) {
	case "Yes":
		return PredictionYes
	case "No":
		return PredictionNo
	}
	return PredictionUnknown
}

// Status is the per-record outcome reported by the service. It is
// independent of whether the HTTP call itself succeeded.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// CustomerID is an optional customer identifier. The service may echo it as
// a number, a numeric string, an empty string or not at all.
type CustomerID struct {
	Value string
	Valid bool
}

// NewCustomerID returns a present identifier.
func NewCustomerID(id int64) CustomerID {
	return CustomerID{Value: strconv.FormatInt(id, 10), Valid: true}
}

// MarshalJSON encodes an absent id as null.
func (c CustomerID) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// UnmarshalJSON accepts numbers, strings and null.
func (c *CustomerID) UnmarshalJSON(data []byte) error {
	*c = CustomerID{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		*c = CustomerID{Value: canonicalNumber(s), Valid: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = CustomerID{Value: canonicalNumber(n.String()), Valid: true}
	return nil
}

// canonicalNumber turns integral floats such as "17.0" (as produced by a
// dataframe column with missing values) into "17". Other values are kept.
func canonicalNumber(s string) string {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

// PredictionResult is one row of output from a single or bulk prediction.
type PredictionResult struct {
	CustomerID  CustomerID
	Prediction  Prediction
	Probability *float64
	Status      Status
	// Detail carries the per-row failure text of an error row.
	Detail string
	// Message is the service-provided message, if any.
	Message string
}

type rawPredictionResult struct {
	CustomerID  CustomerID `json:"customer_id"`
	Prediction  string     `json:"prediction"`
	Probability *float64   `json:"probability"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
}

// UnmarshalJSON normalizes the service's row format. Error rows arrive with
// a status of the form "error: <detail>".
func (r *PredictionResult) UnmarshalJSON(data []byte) error {
	var raw rawPredictionResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = PredictionResult{
		CustomerID:  raw.CustomerID,
		Prediction:  parsePrediction(raw.Prediction),
		Probability: raw.Probability,
		Message:     raw.Message,
	}
	r.Status, r.Detail = parseStatus(raw.Status)
	if r.Status == StatusError && r.Detail == "" {
		r.Detail = raw.Message
	}
	return nil
}

func parseStatus(s string) (Status, string) {
	s = strings.TrimSpace(s)
	switch {
	case s == string(StatusSuccess):
		return StatusSuccess, ""
	case s == string(StatusError):
		return StatusError, ""
	case strings.HasPrefix(s, string(StatusError)+":"):
		return StatusError, strings.TrimSpace(strings.TrimPrefix(s, string(StatusError)+":"))
	case s == "":
		return StatusError, "status missing from response"
	}
	return StatusError, s
}

// Summary holds batch-level counts and rates. Rates are percentages.
type Summary struct {
	TotalRecords          int     `json:"total_records"`
	SuccessfulPredictions int     `json:"successful_predictions"`
	FailedPredictions     int     `json:"failed_predictions"`
	ChurnCount            int     `json:"churn_count"`
	ChurnRate             float64 `json:"churn_rate"`
	SuccessRate           float64 `json:"success_rate"`
}

// RiskSegmentation partitions successful rows by churn probability.
type RiskSegmentation struct {
	HighRisk   int `json:"high_risk"`
	MediumRisk int `json:"medium_risk"`
	LowRisk    int `json:"low_risk"`
}

// ProbabilityStats describe the distribution of churn probabilities. Every
// value is absent when no row succeeded.
type ProbabilityStats struct {
	Average *float64 `json:"average"`
	Median  *float64 `json:"median"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	StdDev  *float64 `json:"std_dev"`
}

// ChurnDistribution counts churn verdicts among successful rows.
type ChurnDistribution struct {
	WillChurn    int `json:"will_churn"`
	WillNotChurn int `json:"will_not_churn"`
}

// FeatureImportance is one entry of the service's top feature list.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// AnalyticsSummary is the aggregate computed by the service over a batch.
type AnalyticsSummary struct {
	Summary           Summary             `json:"summary"`
	ProbabilityStats  ProbabilityStats    `json:"probability_stats"`
	RiskSegmentation  RiskSegmentation    `json:"risk_segmentation"`
	ChurnDistribution ChurnDistribution   `json:"churn_distribution"`
	TopFeatures       []FeatureImportance `json:"top_features,omitempty"`
}

// BulkResponse is the body of a bulk prediction.
type BulkResponse struct {
	Results   []PredictionResult `json:"results"`
	Analytics AnalyticsSummary   `json:"analytics"`
	Status    string             `json:"status"`
	Message   string             `json:"message"`
}

// DailyTrend is one point of the historical trend line.
type DailyTrend struct {
	Date   string `json:"_id"`
	Count  int    `json:"count"`
	Churns int    `json:"churns"`
}

// TrendReport is the body of GET /analytics.
type TrendReport struct {
	DailyTrends      []DailyTrend `json:"daily_trends"`
	TotalPredictions int          `json:"total_predictions"`
	ChurnRate        float64      `json:"churn_rate"`
}
