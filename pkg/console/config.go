// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package console

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"
	"github.com/AccelByte/extend-churn-console/pkg/view"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls console behavior.
type Config struct {
	Form          FormConfig          `yaml:"form"`
	Upload        UploadConfig        `yaml:"upload"`
	RiskBands     RiskBandsConfig     `yaml:"risk_bands"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sessions      SessionsConfig      `yaml:"sessions"`
}

// FormConfig overrides the values a new session's form starts with.
type FormConfig struct {
	Defaults map[string]string `yaml:"defaults,omitempty"`
}

type UploadConfig struct {
	AcceptedTypes map[string][]string `yaml:"accepted_types" validate:"required,min=1,dive,keys,required,endkeys,required,min=1,dive,startswith=."`
	MultipleFiles string              `yaml:"multiple_files" validate:"oneof=reject first"`
}

type RiskBandsConfig struct {
	High   float64 `yaml:"high" validate:"gt=0,lte=1,gtfield=Medium"`
	Medium float64 `yaml:"medium" validate:"gt=0,lt=1"`
}

type NotificationsConfig struct {
	Capacity int           `yaml:"capacity" validate:"min=1"`
	TTL      time.Duration `yaml:"ttl" validate:"gt=0"`
}

type SessionsConfig struct {
	TTL             time.Duration `yaml:"ttl" validate:"gt=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gt=0"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	policy := upload.DefaultPolicy()
	bands := view.DefaultBands()
	return &Config{
		Upload: UploadConfig{
			AcceptedTypes: policy.AcceptedTypes,
			MultipleFiles: string(policy.Multiple),
		},
		RiskBands: RiskBandsConfig{High: bands.High, Medium: bands.Medium},
		Notifications: NotificationsConfig{
			Capacity: 20,
			TTL:      10 * time.Second,
		},
		Sessions: SessionsConfig{
			TTL:             30 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// LoadConfig loads console configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
// Sections missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := DefaultConfig()
	defaultTypes := config.Upload.AcceptedTypes
	config.Upload.AcceptedTypes = nil
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if config.Upload.AcceptedTypes == nil {
		config.Upload.AcceptedTypes = defaultTypes
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	form, err := feature.NewRecordWithDefaults(c.Form.Defaults)
	if err != nil {
		return fmt.Errorf("form defaults: %w", err)
	}
	if _, err := form.ToPayload(); err != nil {
		return fmt.Errorf("form defaults: %w", err)
	}

	return nil
}

// UploadPolicy returns the bulk upload gate described by the config.
func (c *Config) UploadPolicy() upload.Policy {
	accepted := make(map[string][]string, len(c.Upload.AcceptedTypes))
	for contentType, exts := range c.Upload.AcceptedTypes {
		lowered := make([]string, len(exts))
		for i, ext := range exts {
			lowered[i] = strings.ToLower(ext)
		}
		accepted[strings.ToLower(contentType)] = lowered
	}
	return upload.Policy{
		AcceptedTypes: accepted,
		Multiple:      upload.MultiFilePolicy(c.Upload.MultipleFiles),
	}
}

func (c *Config) Bands() view.Bands {
	return view.Bands{High: c.RiskBands.High, Medium: c.RiskBands.Medium}
}

// NewForm returns a form populated with the defaults and the configured overrides.
func (c *Config) NewForm() feature.Record {
	r, err := feature.NewRecordWithDefaults(c.Form.Defaults)
	if err != nil {
		return feature.NewRecord()
	}
	return r
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		value := os.Getenv(parts[0])
		if value == "" && len(parts) == 2 {
			return parts[1]
		}
		return value
	})
}
