// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/common"
	"github.com/AccelByte/extend-churn-console/pkg/console"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"

	"github.com/spf13/cobra"
)

type options struct {
	baseURL    string
	timeout    time.Duration
	configPath string
	logLevel   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "churnctl",
		Short:        "Command line client for the churn prediction service",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.ConfigureLogging(opts.logLevel, false)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "predictor-url",
		common.GetEnv("PREDICTOR_BASE_URL", "http://localhost:5000"), "prediction service base URL")
	flags.DurationVar(&opts.timeout, "timeout",
		common.GetEnvDuration("PREDICTOR_TIMEOUT", 30*time.Second), "per-request timeout")
	flags.StringVar(&opts.configPath, "config", common.GetEnv("CONSOLE_CONFIG_PATH", ""),
		"console YAML config (form defaults, upload types, risk bands)")
	flags.StringVar(&opts.logLevel, "log-level", common.GetEnv("LOG_LEVEL", "warn"), "log level")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newPredictCmd(opts),
		newBulkCmd(opts),
		newTemplateCmd(),
		newTrendsCmd(opts),
	)
	return root
}

func (o *options) client() *predictor.Client {
	return predictor.New(o.baseURL, predictor.WithTimeout(o.timeout))
}

func (o *options) consoleConfig() (*console.Config, error) {
	if o.configPath == "" {
		return console.DefaultConfig(), nil
	}
	return console.LoadConfig(o.configPath)
}

// newSession opens a local console session against the prediction service.
func (o *options) newSession() (*console.Session, error) {
	cfg, err := o.consoleConfig()
	if err != nil {
		return nil, err
	}
	return console.NewSession(o.client(), cfg, o.timeout), nil
}
