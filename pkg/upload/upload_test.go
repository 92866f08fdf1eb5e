// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package upload

import (
	"errors"
	"testing"
)

func TestPolicy_Select(t *testing.T) {
	csv := File{Name: "customers.csv", ContentType: TypeCSV}
	xlsx := File{Name: "customers.xlsx", ContentType: TypeXLSX}

	tests := []struct {
		name         string
		policy       Policy
		files        []File
		expectedName string
		expectedType string
		expectedErr  error
	}{
		{
			name:        "no files",
			policy:      DefaultPolicy(),
			files:       nil,
			expectedErr: ErrNoFile,
		},
		{
			name:         "single csv",
			policy:       DefaultPolicy(),
			files:        []File{csv},
			expectedName: "customers.csv",
			expectedType: TypeCSV,
		},
		{
			name:         "legacy excel",
			policy:       DefaultPolicy(),
			files:        []File{{Name: "old.xls", ContentType: TypeXLS}},
			expectedName: "old.xls",
			expectedType: TypeXLS,
		},
		{
			name:         "declared type with parameters",
			policy:       DefaultPolicy(),
			files:        []File{{Name: "a.csv", ContentType: "text/csv; charset=utf-8"}},
			expectedName: "a.csv",
			expectedType: TypeCSV,
		},
		{
			name:         "octet-stream falls back to extension",
			policy:       DefaultPolicy(),
			files:        []File{{Name: "batch.XLSX", ContentType: "application/octet-stream"}},
			expectedName: "batch.XLSX",
			expectedType: TypeXLSX,
		},
		{
			name:        "multiple files rejected by default",
			policy:      DefaultPolicy(),
			files:       []File{csv, xlsx},
			expectedErr: ErrTooManyFiles,
		},
		{
			name:         "multiple files take first",
			policy:       Policy{AcceptedTypes: DefaultPolicy().AcceptedTypes, Multiple: MultiFileFirst},
			files:        []File{xlsx, csv},
			expectedName: "customers.xlsx",
			expectedType: TypeXLSX,
		},
		{
			name:        "unsupported declared type",
			policy:      DefaultPolicy(),
			files:       []File{{Name: "notes.csv", ContentType: "application/pdf"}},
			expectedErr: ErrInvalidUpload,
		},
		{
			name:        "unknown extension without type",
			policy:      DefaultPolicy(),
			files:       []File{{Name: "notes.txt"}},
			expectedErr: ErrInvalidUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Select(tt.files)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("Select() error = %v, expected %v", err, tt.expectedErr)
				}
				if !errors.Is(err, ErrInvalidUpload) {
					t.Errorf("Select() error = %v, expected it to match ErrInvalidUpload", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Select() unexpected error = %v", err)
			}
			if got.Name != tt.expectedName {
				t.Errorf("Name = %q, expected %q", got.Name, tt.expectedName)
			}
			if got.ContentType != tt.expectedType {
				t.Errorf("ContentType = %q, expected %q", got.ContentType, tt.expectedType)
			}
		})
	}
}

func TestUnsupportedTypeError_As(t *testing.T) {
	_, err := DefaultPolicy().Select([]File{{Name: "x.json", ContentType: "application/json"}})

	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *UnsupportedTypeError, got %T", err)
	}
	if typeErr.ContentType != "application/json" {
		t.Errorf("ContentType = %q, expected %q", typeErr.ContentType, "application/json")
	}
}
