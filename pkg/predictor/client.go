// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package predictor is a typed client for the remote churn prediction service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/feature"
	"github.com/AccelByte/extend-churn-console/pkg/upload"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	pathPredictChurn     = "/predict_churn"
	pathPredictBulkChurn = "/predict_bulk_churn"
	pathAnalytics        = "/analytics"

	// BulkFileField is the multipart field name the bulk endpoint reads.
	BulkFileField = "file"

	defaultTimeout   = 30 * time.Second
	maxResponseBytes = 64 << 20
)

// Client talks to the prediction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the overall timeout of each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTransport replaces the round tripper of the underlying HTTP client.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

// New creates a client for the service at baseURL, e.g. "http://localhost:5002".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the service address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PredictChurn calls POST /predict_churn with one feature payload.
//
// A response whose status is "error" is returned as a result, not as an
// error: the per-record outcome is the caller's to render.
func (c *Client) PredictChurn(ctx context.Context, payload feature.Payload) (*PredictionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathPredictChurn, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out PredictionResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictBulkChurn calls POST /predict_bulk_churn with one spreadsheet as a
// multipart upload. The file content is forwarded untouched.
func (c *Client) PredictBulkChurn(ctx context.Context, file upload.File) (*BulkResponse, error) {
	if file.Content == nil {
		return nil, fmt.Errorf("%w: file %s has no content", upload.ErrNoFile, file.Name)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, BulkFileField, escapeQuotes(file.Name)))
	if file.ContentType != "" {
		header.Set("Content-Type", file.ContentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart section: %w", err)
	}
	written, err := io.Copy(part, file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", file.Name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathPredictBulkChurn, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	logrus.Debugf("uploading %s (%d bytes, %s) for bulk prediction", file.Name, written, file.ContentType)

	var out BulkResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	if out.Results == nil && out.Status == string(StatusError) {
		return nil, &TransportError{StatusCode: http.StatusOK, Message: out.Message}
	}

	return &out, nil
}

// Analytics calls GET /analytics for the historical trend feed.
func (c *Client) Analytics(ctx context.Context) (*TrendReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAnalytics, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var out TrendReport
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorBody is the failure shape the service uses.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if len(bytes.TrimSpace(data)) > 0 {
			_ = json.Unmarshal(sanitizeNonFinite(data), &eb)
		}
		logrus.Warnf("%s %s returned status %d", req.Method, req.URL.Path, resp.StatusCode)
		return &TransportError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if err := json.Unmarshal(sanitizeNonFinite(data), out); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
