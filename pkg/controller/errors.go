// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package controller

import "errors"

// ErrSubmissionInFlight is returned when a controller is asked to submit
// while its previous request has not completed. The call is not an attempt:
// nothing is sent and no notification is posted.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")
