// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AccelByte/extend-churn-console/pkg/template"

	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	var (
		format string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the bulk upload template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data     []byte
				filename string
				err      error
			)
			switch format {
			case "csv":
				data, filename = template.GenerateTemplate()
			case "xlsx":
				data, filename, err = template.GenerateXLSXTemplate()
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format %q, expected csv or xlsx", format)
			}

			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "template format (csv or xlsx)")
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}
