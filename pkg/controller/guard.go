// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package controller

import "sync/atomic"

// guard is a controller's loading flag.
type guard struct {
	busy atomic.Bool
}

// TryAcquire sets the flag and reports whether it was clear.
func (g *guard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *guard) Release() {
	g.busy.Store(false)
}

func (g *guard) Loading() bool {
	return g.busy.Load()
}
