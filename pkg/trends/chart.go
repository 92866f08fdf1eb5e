// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package trends

import "github.com/AccelByte/extend-churn-console/pkg/predictor"

const (
	SeriesTotal  = "Total Predictions"
	SeriesChurns = "Churns"
)

// Series is one line of the trend chart.
type Series struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// Chart is the trend report laid out for a line chart.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// ChartSeries projects report into date labels and two aligned series.
func ChartSeries(report *predictor.TrendReport) Chart {
	chart := Chart{
		Labels: []string{},
		Series: []Series{
			{Label: SeriesTotal, Data: []int{}},
			{Label: SeriesChurns, Data: []int{}},
		},
	}
	if report == nil {
		return chart
	}

	for _, day := range report.DailyTrends {
		chart.Labels = append(chart.Labels, day.Date)
		chart.Series[0].Data = append(chart.Series[0].Data, day.Count)
		chart.Series[1].Data = append(chart.Series[1].Data, day.Churns)
	}
	return chart
}
