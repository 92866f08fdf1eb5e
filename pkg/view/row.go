// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package view

import (
	"math"
	"strconv"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
)

const (
	// Placeholder renders an absent value. Absent values are never invented.
	Placeholder = "-"
	// NotAvailable renders a missing prediction verdict.
	NotAvailable = "N/A"
)

// Tone drives how the prediction badge is colored.
type Tone string

const (
	ToneChurn   Tone = "churn"
	ToneRetain  Tone = "retain"
	ToneUnknown Tone = "unknown"
)

// Band is the risk bucket of a probability bar.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Bands holds the lower bounds of the high and medium risk buckets.
type Bands struct {
	High   float64
	Medium float64
}

// DefaultBands matches the service's risk segmentation.
func DefaultBands() Bands {
	return Bands{High: 0.7, Medium: 0.3}
}

// Classify returns the bucket of probability p.
func (b Bands) Classify(p float64) Band {
	switch {
	case p >= b.High:
		return BandHigh
	case p >= b.Medium:
		return BandMedium
	}
	return BandLow
}

// Row is one rendering-ready result line.
type Row struct {
	CustomerID         string   `json:"customer_id"`
	Prediction         string   `json:"prediction"`
	Tone               Tone     `json:"tone"`
	Probability        *float64 `json:"probability"`
	ProbabilityPercent *float64 `json:"probability_percent,omitempty"`
	ProbabilityLabel   string   `json:"probability_label"`
	Band               Band     `json:"band,omitempty"`
	Status             string   `json:"status"`
	Detail             string   `json:"detail,omitempty"`
}

// Failed reports whether the service marked this row as an error.
func (r Row) Failed() bool {
	return r.Status == string(predictor.StatusError)
}

// NewRow projects one prediction result for rendering. Each optional field
// is branched on explicitly. An error row never shows a probability bar,
// since the service reports a placeholder 0 for rows it could not score.
func NewRow(res predictor.PredictionResult, bands Bands) Row {
	row := Row{
		CustomerID:       Placeholder,
		Prediction:       NotAvailable,
		Tone:             ToneUnknown,
		ProbabilityLabel: Placeholder,
		Status:           string(res.Status),
		Detail:           res.Detail,
	}

	if res.CustomerID.Valid && res.CustomerID.Value != "" {
		row.CustomerID = res.CustomerID.Value
	}

	switch res.Prediction {
	case predictor.PredictionYes:
		row.Prediction = string(predictor.PredictionYes)
		row.Tone = ToneChurn
	case predictor.PredictionNo:
		row.Prediction = string(predictor.PredictionNo)
		row.Tone = ToneRetain
	}

	if res.Probability != nil && res.Status == predictor.StatusSuccess {
		p := *res.Probability
		percent := math.Round(p*10000) / 100
		row.Probability = &p
		row.ProbabilityPercent = &percent
		row.ProbabilityLabel = strconv.FormatFloat(percent, 'f', -1, 64) + "%"
		row.Band = bands.Classify(p)
	}

	return row
}

// NewRows projects a result list, preserving order.
func NewRows(results []predictor.PredictionResult, bands Bands) []Row {
	rows := make([]Row, 0, len(results))
	for _, res := range results {
		rows = append(rows, NewRow(res, bands))
	}
	return rows
}

func (r Row) clone() Row {
	out := r
	if r.Probability != nil {
		p := *r.Probability
		out.Probability = &p
	}
	if r.ProbabilityPercent != nil {
		p := *r.ProbabilityPercent
		out.ProbabilityPercent = &p
	}
	return out
}
