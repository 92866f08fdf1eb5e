// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package console

import (
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/metrics"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Manager keeps sessions in memory. A session idle for longer than the
// configured TTL is evicted.
type Manager struct {
	sessions       *cache.Cache
	predictor      Predictor
	cfg            *Config
	requestTimeout time.Duration
}

func NewManager(p Predictor, cfg *Config, requestTimeout time.Duration) *Manager {
	sessions := cache.New(cfg.Sessions.TTL, cfg.Sessions.CleanupInterval)
	sessions.OnEvicted(func(id string, _ interface{}) {
		logrus.Debugf("session %s evicted", id)
		metrics.ActiveSessions.Dec()
	})

	return &Manager{
		sessions:       sessions,
		predictor:      p,
		cfg:            cfg,
		requestTimeout: requestTimeout,
	}
}

func (m *Manager) Create() *Session {
	s := NewSession(m.predictor, m.cfg, m.requestTimeout)
	m.sessions.SetDefault(s.ID, s)
	metrics.ActiveSessions.Inc()
	logrus.Infof("session %s created", s.ID)
	return s
}

// Get returns the session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := v.(*Session)
	m.sessions.SetDefault(id, s)
	return s, nil
}

func (m *Manager) Delete(id string) error {
	if _, ok := m.sessions.Get(id); !ok {
		return ErrSessionNotFound
	}
	m.sessions.Delete(id)
	return nil
}

// Count returns the number of live sessions, including expired ones not yet
// cleaned up.
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}
