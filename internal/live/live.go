// Package live holds the single most recent reading in memory so the
// dashboard's live view never touches the database.
package live

import (
	"sync"

	"safesocket/internal/domain"
)

// Sentinel values shown before the first reading arrives.
const (
	InitialStatus    = "WAITING FOR DEVICE..."
	InitialTimestamp = "--:--:--"
)

type Store struct {
	mu   sync.RWMutex
	snap domain.LiveSnapshot
}

func NewStore() *Store {
	return &Store{snap: domain.LiveSnapshot{
		Current:   0,
		Status:    InitialStatus,
		Timestamp: InitialTimestamp,
	}}
}

// Set overwrites the snapshot as a whole; concurrent readers never see
// fields from two different payloads.
func (s *Store) Set(current float64, status, timeOnly string) {
	s.mu.Lock()
	s.snap = domain.LiveSnapshot{Current: current, Status: status, Timestamp: timeOnly}
	s.mu.Unlock()
}

func (s *Store) Get() domain.LiveSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
