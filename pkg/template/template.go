// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package template produces the downloadable bulk upload template.
package template

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/xuri/excelize/v2"
)

const (
	CSVFilename  = "churn_prediction_template.csv"
	XLSXFilename = "churn_prediction_template.xlsx"
	SheetName    = "Template"
)

// Header is the minimal single-record schema a bulk file must carry.
var Header = []string{
	feature.FieldCustomerID,
	feature.FieldTenure,
	feature.FieldWarehouseToHome,
	feature.FieldNumDevices,
	feature.FieldSatisfactionScore,
	feature.FieldGender,
	feature.FieldMaritalStatus,
	feature.FieldPaymentMode,
}

// exampleRow holds typed values so the workbook keeps numbers numeric.
var exampleRow = []interface{}{1, 12, 5, 3, 4, "male", "single", "Credit Card"}

// GenerateTemplate returns the CSV template and its download filename. The
// output does not depend on any state.
func GenerateTemplate() ([]byte, string) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	row := make([]string, len(exampleRow))
	for i, v := range exampleRow {
		row[i] = fmt.Sprint(v)
	}
	// writes to a bytes.Buffer do not fail
	_ = w.WriteAll([][]string{Header, row})

	return buf.Bytes(), CSVFilename
}

// GenerateXLSXTemplate returns the same header and example row as a workbook.
func GenerateXLSXTemplate() ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range Header {
		if err := setCell(f, i+1, 1, header); err != nil {
			return nil, "", err
		}
	}
	for i, value := range exampleRow {
		if err := setCell(f, i+1, 2, value); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to generate Excel file: %w", err)
	}
	return buf.Bytes(), XLSXFilename, nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}

// ContentType returns the MIME type to serve filename with.
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return upload.TypeCSV
	case ".xlsx":
		return upload.TypeXLSX
	case ".xls":
		return upload.TypeXLS
	}
	return "application/octet-stream"
}
