// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package console

import (
	"errors"
	"testing"
	"time"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(&stubPredictor{}, DefaultConfig(), time.Second)

	s := m.Create()
	if m.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", m.Count())
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != s {
		t.Error("Get() returned a different session")
	}

	if err := m.Delete(s.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after delete error = %v, expected ErrSessionNotFound", err)
	}
	if err := m.Delete(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete() error = %v, expected ErrSessionNotFound", err)
	}
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	m := NewManager(&stubPredictor{}, DefaultConfig(), time.Second)

	a := m.Create()
	b := m.Create()
	if a.ID == b.ID {
		t.Fatal("sessions share an id")
	}

	_ = a.SetMode(ModeBulk)
	if b.Mode() != ModeSingle {
		t.Errorf("session b mode = %q, expected single", b.Mode())
	}
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sessions.TTL = 50 * time.Millisecond
	cfg.Sessions.CleanupInterval = time.Hour
	m := NewManager(&stubPredictor{}, cfg, time.Second)

	s := m.Create()
	time.Sleep(100 * time.Millisecond)

	if _, err := m.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() of idle session error = %v, expected ErrSessionNotFound", err)
	}
}
