// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/trends"

	"github.com/spf13/cobra"
)

func newTrendsCmd(opts *options) *cobra.Command {
	var retries int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show the daily prediction and churn counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := trends.NewService(opts.client(), trends.NoopCache{}, trends.WithMaxRetries(retries))
			report, err := service.Report(cmd.Context())
			if err != nil {
				return err
			}

			chart := trends.ChartSeries(report)
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), struct {
					Report *predictor.TrendReport `json:"report"`
					Chart  trends.Chart           `json:"chart"`
				}{report, chart})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "DATE\t%s\t%s\n", chart.Series[0].Label, chart.Series[1].Label)
			for i, label := range chart.Labels {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", label, chart.Series[0].Data[i], chart.Series[1].Data[i])
			}
			fmt.Fprintf(tw, "\nTotal predictions\t%d\n", report.TotalPredictions)
			fmt.Fprintf(tw, "Churn rate\t%.2f%%\n", report.ChurnRate)
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&retries, "retries", 3, "attempts on 5xx or unreachable service")
	return cmd
}
