// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package template

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/xuri/excelize/v2"
)

func TestGenerateTemplate(t *testing.T) {
	data, filename := GenerateTemplate()

	expected := "customer_id,tenure,warehouse_to_home,num_devices,satisfaction_score,gender,marital_status,payment_mode\n" +
		"1,12,5,3,4,male,single,Credit Card\n"
	if string(data) != expected {
		t.Errorf("GenerateTemplate() = %q, expected %q", data, expected)
	}
	if filename != "churn_prediction_template.csv" {
		t.Errorf("filename = %q, expected churn_prediction_template.csv", filename)
	}
}

func TestGenerateTemplateIsDeterministic(t *testing.T) {
	first, _ := GenerateTemplate()
	second, _ := GenerateTemplate()
	if !bytes.Equal(first, second) {
		t.Error("GenerateTemplate() output differs between calls")
	}
}

func TestTemplateParsesAsFeatureRecord(t *testing.T) {
	data, _ := GenerateTemplate()

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("template is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if len(rows[0]) != 8 || len(rows[1]) != 8 {
		t.Fatalf("columns = %d/%d, expected 8", len(rows[0]), len(rows[1]))
	}

	overrides := make(map[string]string, len(rows[0]))
	for i, field := range rows[0] {
		if !feature.IsKnownField(field) {
			t.Errorf("header %q is not a feature field", field)
		}
		overrides[field] = rows[1][i]
	}

	rec, err := feature.NewRecordWithDefaults(overrides)
	if err != nil {
		t.Fatalf("NewRecordWithDefaults() error = %v", err)
	}
	payload, err := rec.ToPayload()
	if err != nil {
		t.Fatalf("ToPayload() error = %v", err)
	}
	if payload.CustomerID == nil || *payload.CustomerID != 1 || payload.Tenure != 12 {
		t.Errorf("payload = %+v, expected customer 1 tenure 12", payload)
	}
}

func TestGenerateXLSXTemplate(t *testing.T) {
	data, filename, err := GenerateXLSXTemplate()
	if err != nil {
		t.Fatalf("GenerateXLSXTemplate() error = %v", err)
	}
	if filename != XLSXFilename {
		t.Errorf("filename = %q, expected %q", filename, XLSXFilename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], Header) {
		t.Errorf("header = %v, expected %v", rows[0], Header)
	}

	csvData, _ := GenerateTemplate()
	csvRows, _ := csv.NewReader(bytes.NewReader(csvData)).ReadAll()
	if !reflect.DeepEqual(rows[1], csvRows[1]) {
		t.Errorf("example row = %v, expected %v", rows[1], csvRows[1])
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{filename: CSVFilename, expected: upload.TypeCSV},
		{filename: XLSXFilename, expected: upload.TypeXLSX},
		{filename: "legacy.XLS", expected: upload.TypeXLS},
		{filename: "notes", expected: "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.filename); got != tt.expected {
			t.Errorf("ContentType(%q) = %q, expected %q", tt.filename, got, tt.expected)
		}
	}
}
