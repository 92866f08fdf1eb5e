// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package console

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
form:
  defaults:
    tenure: "6"
    gender: female
upload:
  accepted_types:
    text/csv: [".csv"]
  multiple_files: first
risk_bands:
  high: 0.8
  medium: 0.4
notifications:
  capacity: 5
  ttl: 3s
sessions:
  ttl: 1h
  cleanup_interval: 10m
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Upload.AcceptedTypes) != 1 {
		t.Errorf("accepted types = %v, expected only text/csv", cfg.Upload.AcceptedTypes)
	}
	if cfg.UploadPolicy().Multiple != upload.MultiFileFirst {
		t.Errorf("multi-file policy = %q, expected %q", cfg.UploadPolicy().Multiple, upload.MultiFileFirst)
	}
	if b := cfg.Bands(); b.High != 0.8 || b.Medium != 0.4 {
		t.Errorf("bands = %+v, expected 0.8/0.4", b)
	}
	if cfg.Notifications.Capacity != 5 || cfg.Notifications.TTL != 3*time.Second {
		t.Errorf("notifications = %+v, expected capacity 5 ttl 3s", cfg.Notifications)
	}
	if cfg.Sessions.TTL != time.Hour {
		t.Errorf("session ttl = %v, expected 1h", cfg.Sessions.TTL)
	}

	form := cfg.NewForm()
	if form.Get(feature.FieldTenure) != "6" || form.Get(feature.FieldGender) != "female" {
		t.Errorf("form = %v, expected tenure 6 and gender female", form.Values())
	}
	if form.Get(feature.FieldPaymentMode) != "Credit Card" {
		t.Errorf("payment_mode = %q, expected default Credit Card", form.Get(feature.FieldPaymentMode))
	}
}

func TestLoadConfigKeepsDefaultsForMissingSections(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "risk_bands:\n  high: 0.9\n  medium: 0.5\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	defaults := DefaultConfig()
	if len(cfg.Upload.AcceptedTypes) != len(defaults.Upload.AcceptedTypes) {
		t.Errorf("accepted types = %v, expected defaults", cfg.Upload.AcceptedTypes)
	}
	if cfg.Upload.MultipleFiles != string(upload.MultiFileReject) {
		t.Errorf("multiple_files = %q, expected reject", cfg.Upload.MultipleFiles)
	}
	if cfg.Notifications != defaults.Notifications {
		t.Errorf("notifications = %+v, expected %+v", cfg.Notifications, defaults.Notifications)
	}
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_MULTI_FILE_POLICY", "first")

	cfg, err := LoadConfig(writeConfig(t, `
upload:
  multiple_files: ${TEST_MULTI_FILE_POLICY:reject}
notifications:
  capacity: 20
  ttl: ${TEST_UNSET_TTL:15s}
`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Upload.MultipleFiles != "first" {
		t.Errorf("multiple_files = %q, expected first", cfg.Upload.MultipleFiles)
	}
	if cfg.Notifications.TTL != 15*time.Second {
		t.Errorf("ttl = %v, expected 15s", cfg.Notifications.TTL)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "unknown multi-file policy",
			content: "upload:\n  multiple_files: merge\n",
			errMsg:  "MultipleFiles",
		},
		{
			name:    "bands out of order",
			content: "risk_bands:\n  high: 0.2\n  medium: 0.5\n",
			errMsg:  "High",
		},
		{
			name:    "extension without dot",
			content: "upload:\n  accepted_types:\n    text/csv: [\"csv\"]\n",
			errMsg:  "AcceptedTypes",
		},
		{
			name:    "zero notification capacity",
			content: "notifications:\n  capacity: 0\n  ttl: 1s\n",
			errMsg:  "Capacity",
		},
		{
			name:    "unknown form field",
			content: "form:\n  defaults:\n    loyalty: \"3\"\n",
			errMsg:  "unknown feature field",
		},
		{
			name:    "non-numeric form default",
			content: "form:\n  defaults:\n    tenure: long\n",
			errMsg:  "tenure",
		},
		{
			name:    "malformed yaml",
			content: "risk_bands: [\n",
			errMsg:  "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, expected it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config", "console.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if _, ok := cfg.NewForm().CustomerID(); ok {
		t.Error("shipped form should start without a customer id")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}
