// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Command churnctl drives the churn prediction service from a terminal:
// single and bulk predictions, template download and the trend feed.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional for local use
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
