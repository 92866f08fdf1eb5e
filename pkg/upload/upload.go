// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package upload

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Accepted spreadsheet MIME types.
const (
	TypeCSV    = "text/csv"
	TypeXLS    = "application/vnd.ms-excel"
	TypeXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	typeBinary = "application/octet-stream"
)

// MultiFilePolicy decides what happens when more than one file is offered.
type MultiFilePolicy string

const (
	// MultiFileReject refuses the whole drop.
	MultiFileReject MultiFilePolicy = "reject"
	// MultiFileFirst honors the first file and ignores the rest.
	MultiFileFirst MultiFilePolicy = "first"
)

// File is one uploaded spreadsheet. Content is streamed to the prediction
// service as-is; nothing here reads or validates it.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Policy gates what the bulk path accepts: MIME type and file count only.
type Policy struct {
	// AcceptedTypes maps a MIME type to the extensions accepted for it.
	AcceptedTypes map[string][]string
	Multiple      MultiFilePolicy
}

// DefaultPolicy accepts CSV and both Excel formats and rejects multi-file drops.
func DefaultPolicy() Policy {
	return Policy{
		AcceptedTypes: map[string][]string{
			TypeCSV:  {".csv"},
			TypeXLS:  {".xls"},
			TypeXLSX: {".xlsx"},
		},
		Multiple: MultiFileReject,
	}
}

// Select validates an offered set of files and returns the one to submit.
func (p Policy) Select(files []File) (File, error) {
	if len(files) == 0 {
		return File{}, ErrNoFile
	}

	if len(files) > 1 {
		switch p.Multiple {
		case MultiFileFirst:
			logrus.Infof("ignoring %d extra uploaded file(s), honoring %s", len(files)-1, files[0].Name)
		default:
			return File{}, fmt.Errorf("%w: got %d", ErrTooManyFiles, len(files))
		}
	}

	f := files[0]
	contentType, ok := p.resolveType(f)
	if !ok {
		return File{}, &UnsupportedTypeError{Name: f.Name, ContentType: f.ContentType}
	}
	f.ContentType = contentType

	return f, nil
}

// resolveType returns the accepted MIME type of f. The declared type wins;
// an empty or generic binary type falls back to the file extension.
func (p Policy) resolveType(f File) (string, bool) {
	declared := normalizeType(f.ContentType)
	if declared != "" && declared != typeBinary {
		_, ok := p.AcceptedTypes[declared]
		return declared, ok
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	if ext == "" {
		return "", false
	}
	for mimeType, exts := range p.AcceptedTypes {
		for _, e := range exts {
			if strings.EqualFold(e, ext) {
				return mimeType, true
			}
		}
	}
	return "", false
}

// normalizeType strips parameters such as "; charset=utf-8".
func normalizeType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
