// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package feature

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// strconv.ParseFloat alone would also accept "NaN", "Inf", hex floats and
// underscores, none of which a numeric form input can legitimately produce.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

func parseDecimal(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInteger(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if !integerPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// capitalize upper-cases the first letter and leaves the rest untouched,
// e.g. "male" -> "Male".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
