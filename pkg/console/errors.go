// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package console

import "errors"

var (
	// ErrUnknownMode is returned when switching to a mode other than single or bulk.
	ErrUnknownMode = errors.New("unknown submission mode")

	// ErrModeInactive is returned when submitting through a mode that is not
	// the one currently shown.
	ErrModeInactive = errors.New("submission mode is not active")

	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session not found")
)
