// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package view

import (
	"sync"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/sirupsen/logrus"
)

// Mode identifies which submission path produced a result set.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeBulk   Mode = "bulk"
)

// View is what the results pane renders.
type View struct {
	// Generation is the token of the submission that produced this view;
	// 0 means nothing has been submitted yet.
	Generation uint64     `json:"generation"`
	Origin     Mode       `json:"origin,omitempty"`
	Results    []Row      `json:"results"`
	Analytics  *Analytics `json:"analytics"`
	// UpdatedAt is nil until a response has been applied.
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Update is one completed submission's contribution to the view.
type Update struct {
	Mode      Mode
	Results   []predictor.PredictionResult
	Analytics *predictor.AnalyticsSummary
}

// Store owns the result/analytics view of one console session. Results and
// analytics are only ever replaced together, and only by the holder of the
// latest issued generation token.
type Store struct {
	mu     sync.RWMutex
	latest uint64
	view   View
	bands  Bands
	now    func() time.Time
}

// NewStore creates an empty store.
func NewStore(bands Bands) *Store {
	return &Store{
		bands: bands,
		view:  View{Results: []Row{}},
		now:   time.Now,
	}
}

// Issue hands out the next generation token. Tokens increase monotonically.
func (s *Store) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	return s.latest
}

// Latest returns the most recently issued token.
func (s *Store) Latest() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}

// Apply replaces the view wholesale if token is the latest issued one and
// reports whether it did. A single-mode update clears the analytics.
func (s *Store) Apply(token uint64, u Update) bool {
	rows := NewRows(u.Results, s.bands)
	var analytics *Analytics
	if u.Mode == ModeBulk && u.Analytics != nil {
		analytics = NewAnalytics(*u.Analytics)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latest {
		logrus.Infof("discarding stale %s response: generation %d, latest %d", u.Mode, token, s.latest)
		return false
	}

	now := s.now()
	s.view = View{
		Generation: token,
		Origin:     u.Mode,
		Results:    rows,
		Analytics:  analytics,
		UpdatedAt:  &now,
	}
	return true
}

// Snapshot returns a deep copy of the current view.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.view
	out.Results = make([]Row, len(s.view.Results))
	for i, r := range s.view.Results {
		out.Results[i] = r.clone()
	}
	out.Analytics = s.view.Analytics.clone()
	if s.view.UpdatedAt != nil {
		t := *s.view.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
