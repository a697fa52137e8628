package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/epeers/fundsdash/internal/models"
)

// SessionStore keeps one SessionState per session id. States are stored as
// msgpack snapshots, so every Get hands out an independent copy.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

type sessionEntry struct {
	state     []byte
	updatedAt time.Time
}

// NewSessionStore creates a SessionStore; sessions idle for longer than ttl are
// dropped by Prune. A ttl of zero keeps sessions forever.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.New().String()
}

// DefaultState returns the initial session state for a dataset
func DefaultState(ds *models.Dataset) models.SessionState {
	return models.SessionState{
		Filters:     models.NewFilterState(ds.NAVMin, ds.NAVMax),
		Sort:        DefaultSort(ds.Table),
		Performance: models.PerformanceSelection{Period: models.DefaultPerformancePeriod},
		Comparison:  models.ComparisonSelection{Funds: []string{}},
	}
}

// Get returns the state of session id, or the default state for ds when the
// session is new.
func (s *SessionStore) Get(id string, ds *models.Dataset) (models.SessionState, error) {
	s.mu.RLock()
	entry, exists := s.sessions[id]
	s.mu.RUnlock()
	if !exists {
		return DefaultState(ds), nil
	}

	var state models.SessionState
	if err := msgpack.Unmarshal(entry.state, &state); err != nil {
		return models.SessionState{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	normalize(&state)
	return state, nil
}

// normalize replaces nil selections so they serialize as empty lists
func normalize(state *models.SessionState) {
	if state.Filters.Categories == nil {
		state.Filters.Categories = []string{}
	}
	if state.Filters.Companies == nil {
		state.Filters.Companies = []string{}
	}
	if state.Filters.RiskLevels == nil {
		state.Filters.RiskLevels = []models.RiskTier{}
	}
	if state.Comparison.Funds == nil {
		state.Comparison.Funds = []string{}
	}
}

// Save stores the state of session id
func (s *SessionStore) Save(id string, state models.SessionState) error {
	b, err := msgpack.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = sessionEntry{state: b, updatedAt: time.Now()}
	return nil
}

// Len returns the number of stored sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Prune drops sessions idle for longer than the ttl and returns how many were removed.
func (s *SessionStore) Prune(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.updatedAt) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Name identifies the prune job to the scheduler
func (s *SessionStore) Name() string {
	return "session-prune"
}

// Run prunes idle sessions
func (s *SessionStore) Run(ctx context.Context) error {
	if n := s.Prune(time.Now()); n > 0 {
		log.Infof("Pruned %d idle sessions", n)
	}
	return nil
}
