// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package view

import (
	"fmt"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
)

// Analytics is the batch summary as shown next to bulk results.
type Analytics struct {
	Summary           predictor.Summary             `json:"summary"`
	RiskSegmentation  predictor.RiskSegmentation    `json:"risk_segmentation"`
	ProbabilityStats  predictor.ProbabilityStats    `json:"probability_stats"`
	ChurnDistribution predictor.ChurnDistribution   `json:"churn_distribution"`
	TopFeatures       []predictor.FeatureImportance `json:"top_features,omitempty"`
	Display           AnalyticsDisplay              `json:"display"`
}

// AnalyticsDisplay holds preformatted probability statistics.
type AnalyticsDisplay struct {
	Average string `json:"average"`
	Median  string `json:"median"`
	Max     string `json:"max"`
	Min     string `json:"min"`
	StdDev  string `json:"std_dev"`
}

// NewAnalytics builds the analytics view of a batch summary.
func NewAnalytics(s predictor.AnalyticsSummary) *Analytics {
	a := &Analytics{
		Summary:           s.Summary,
		RiskSegmentation:  s.RiskSegmentation,
		ProbabilityStats:  cloneStats(s.ProbabilityStats),
		ChurnDistribution: s.ChurnDistribution,
		Display: AnalyticsDisplay{
			Average: formatStat(s.ProbabilityStats.Average),
			Median:  formatStat(s.ProbabilityStats.Median),
			Max:     formatStat(s.ProbabilityStats.Max),
			Min:     formatStat(s.ProbabilityStats.Min),
			StdDev:  formatStat(s.ProbabilityStats.StdDev),
		},
	}
	if len(s.TopFeatures) > 0 {
		a.TopFeatures = append([]predictor.FeatureImportance(nil), s.TopFeatures...)
	}
	return a
}

func formatStat(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", *v)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStats(s predictor.ProbabilityStats) predictor.ProbabilityStats {
	return predictor.ProbabilityStats{
		Average: cloneFloat(s.Average),
		Median:  cloneFloat(s.Median),
		Min:     cloneFloat(s.Min),
		Max:     cloneFloat(s.Max),
		StdDev:  cloneFloat(s.StdDev),
	}
}

func (a *Analytics) clone() *Analytics {
	if a == nil {
		return nil
	}
	out := *a
	out.ProbabilityStats = cloneStats(a.ProbabilityStats)
	if a.TopFeatures != nil {
		out.TopFeatures = append([]predictor.FeatureImportance(nil), a.TopFeatures...)
	}
	return &out
}
