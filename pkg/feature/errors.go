// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package feature

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecord is matched by every ValidationError.
	ErrInvalidRecord = errors.New("invalid feature record")

	// ErrUnknownField indicates an update to a field outside the schema.
	ErrUnknownField = errors.New("unknown feature field")
)

// ValidationError reports a field whose raw value could not be coerced to
// the type the prediction service expects.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s: not a number", e.Value, e.Field)
}

// Is makes errors.Is(err, ErrInvalidRecord) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRecord
}
