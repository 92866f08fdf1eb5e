// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/template"
	"github.com/AccelByte/extend-churn-console/pkg/trends"
)

// TrendsResponse is the trend feed plus its chart projection.
type TrendsResponse struct {
	Report *predictor.TrendReport `json:"report"`
	Chart  trends.Chart           `json:"chart"`
}

// DownloadTemplate serves the bulk upload template, CSV unless
// format=xlsx is requested.
func (h *Handler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	var (
		data     []byte
		filename string
	)

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		data, filename = template.GenerateTemplate()
	case "xlsx":
		var err error
		data, filename, err = template.GenerateXLSXTemplate()
		if err != nil {
			writeError(w, http.StatusInternalServerError, CodeInternal, err)
			return
		}
	default:
		writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Errorf("unsupported template format: %s", format))
		return
	}

	w.Header().Set("Content-Type", template.ContentType(filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	if h.trends == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, errors.New("trend feed is not configured"))
		return
	}

	report, err := h.trends.Report(r.Context())
	if err != nil {
		status, code := submissionStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, TrendsResponse{Report: report, Chart: trends.ChartSeries(report)})
}
