// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package upload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUpload is matched by every error the upload gate returns.
	ErrInvalidUpload = errors.New("invalid upload")

	// ErrNoFile indicates that no file was offered.
	ErrNoFile = fmt.Errorf("%w: no file uploaded", ErrInvalidUpload)

	// ErrTooManyFiles indicates a multi-file drop under the reject policy.
	ErrTooManyFiles = fmt.Errorf("%w: only one file may be uploaded at a time", ErrInvalidUpload)
)

// UnsupportedTypeError reports a file whose type is not an accepted spreadsheet format.
type UnsupportedTypeError struct {
	Name        string
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file %s (%s): upload CSV or Excel (XLS/XLSX)", e.Name, e.ContentType)
}

// Is makes errors.Is(err, ErrInvalidUpload) match.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrInvalidUpload
}
