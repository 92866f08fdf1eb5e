// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/AccelByte/extend-churn-console/internal/config"
	"github.com/AccelByte/extend-churn-console/pkg/console"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"

	"github.com/sirupsen/logrus"
)

// InitPredictorClient creates the prediction service client.
func InitPredictorClient(cfg *config.Config) *predictor.Client {
	client := predictor.New(cfg.PredictorBaseURL, predictor.WithTimeout(cfg.PredictorTimeout))
	logrus.Infof("prediction service at %s (timeout %v)", client.BaseURL(), cfg.PredictorTimeout)
	return client
}

// LoadConsoleConfig reads the console YAML. A missing file falls back to
// the built-in defaults; an unreadable or invalid one is an error.
func LoadConsoleConfig(path string) (*console.Config, error) {
	consoleConfig, err := console.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("console config %s not found, using defaults", path)
		return console.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load console config from %s: %w", path, err)
	}

	logrus.Infof("loaded console configuration from %s", path)
	return consoleConfig, nil
}

// InitSessionManager creates the console session registry.
func InitSessionManager(cfg *config.Config, consoleConfig *console.Config, p console.Predictor) *console.Manager {
	manager := console.NewManager(p, consoleConfig, cfg.PredictorTimeout)
	logrus.Infof("initialized session manager (idle ttl %v, multi-file policy %s)",
		consoleConfig.Sessions.TTL, consoleConfig.Upload.MultipleFiles)
	return manager
}
