// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AccelByte/extend-churn-console/pkg/console"
	"github.com/AccelByte/extend-churn-console/pkg/template"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newBulkCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:     "bulk FILE [FILE...]",
		Short:   "Score every record of a CSV or Excel file",
		Example: "  churnctl bulk customers.csv",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			if err := session.SetMode(console.ModeBulk); err != nil {
				return err
			}

			files := make([]upload.File, 0, len(args))
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()

				info, err := f.Stat()
				if err != nil {
					return err
				}

				file := upload.File{
					Name:        filepath.Base(path),
					ContentType: template.ContentType(path),
					Size:        info.Size(),
					Content:     f,
				}
				if !quiet {
					bar := progressbar.DefaultBytes(info.Size(), "uploading "+file.Name)
					reader := progressbar.NewReader(f, bar)
					file.Content = &reader
				}
				files = append(files, file)
			}

			out, err := session.SubmitBulk(cmd.Context(), files)
			if err != nil {
				return submissionError(out, err)
			}
			if !quiet {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			return printOutcome(cmd, opts, out)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the upload progress bar")
	return cmd
}
