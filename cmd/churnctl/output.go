// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/AccelByte/extend-churn-console/pkg/controller"
	"github.com/AccelByte/extend-churn-console/pkg/view"

	"github.com/spf13/cobra"
)

// submissionError prefers the notification text the console would show.
func submissionError(out controller.Outcome, err error) error {
	if out.Notification.Text != "" {
		return errors.New(out.Notification.Text)
	}
	return err
}

func printOutcome(cmd *cobra.Command, opts *options, out controller.Outcome) error {
	w := cmd.OutOrStdout()
	if opts.jsonOutput {
		return printJSON(w, out)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), out.Notification.Text)
	if out.Result == nil {
		return nil
	}

	if err := printRows(w, out.Result.Results); err != nil {
		return err
	}
	if out.Result.Analytics != nil {
		return printAnalytics(w, out.Result.Analytics)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRows(w io.Writer, rows []view.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CUSTOMER ID\tPREDICTION\tPROBABILITY\tRISK\tSTATUS")
	for _, row := range rows {
		band := string(row.Band)
		if band == "" {
			band = view.Placeholder
		}
		status := row.Status
		if row.Detail != "" {
			status += ": " + row.Detail
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.CustomerID, row.Prediction, row.ProbabilityLabel, band, status)
	}
	return tw.Flush()
}

func printAnalytics(w io.Writer, a *view.Analytics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total records\t%d\n", a.Summary.TotalRecords)
	fmt.Fprintf(tw, "Successful\t%d\n", a.Summary.SuccessfulPredictions)
	fmt.Fprintf(tw, "Failed\t%d\n", a.Summary.FailedPredictions)
	fmt.Fprintf(tw, "Churn rate\t%.2f%%\n", a.Summary.ChurnRate)
	fmt.Fprintf(tw, "Risk high/medium/low\t%d/%d/%d\n",
		a.RiskSegmentation.HighRisk, a.RiskSegmentation.MediumRisk, a.RiskSegmentation.LowRisk)
	fmt.Fprintf(tw, "Probability avg/median\t%s/%s\n", a.Display.Average, a.Display.Median)
	fmt.Fprintf(tw, "Probability min/max\t%s/%s\n", a.Display.Min, a.Display.Max)
	return tw.Flush()
}
