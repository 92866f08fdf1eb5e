// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package notify holds the transient, dismissible notifications shown to the
// user after each submission attempt.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one toast.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	defaultCapacity = 20
	defaultTTL      = 10 * time.Second
)

// Queue keeps the most recent notifications of one session. It drops the
// oldest entry once full and hides entries older than the TTL.
type Queue struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewQueue creates a queue. Non-positive arguments select the defaults.
func NewQueue(capacity int, ttl time.Duration) *Queue {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Queue{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Push appends a notification and returns it.
func (q *Queue) Push(level Level, text string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Text:      text,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, n)
	if over := len(q.items) - q.capacity; over > 0 {
		q.items = append([]Notification(nil), q.items[over:]...)
	}
	return n
}

// List returns the live notifications, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked()
	return append([]Notification{}, q.items...)
}

// Dismiss removes a notification and reports whether it was present.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) pruneLocked() {
	cutoff := q.now().Add(-q.ttl)
	kept := q.items[:0]
	for _, n := range q.items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	q.items = kept
}
