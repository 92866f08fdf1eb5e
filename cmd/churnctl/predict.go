// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPredictCmd(opts *options) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Score one customer",
		Long:    "Score one customer. Unset fields keep the form defaults; use --set field=value for each field to change.",
		Example: "  churnctl predict --set customer_id=42 --set tenure=12 --set gender=female",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}

			for _, kv := range fields {
				name, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected field=value", kv)
				}
				if err := session.UpdateField(strings.TrimSpace(name), value); err != nil {
					return err
				}
			}

			out, err := session.SubmitSingle(cmd.Context())
			if err != nil {
				return submissionError(out, err)
			}
			return printOutcome(cmd, opts, out)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "set", nil, "form field as field=value (repeatable)")
	return cmd
}
