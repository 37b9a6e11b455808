package session

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/dentiscan/backend/pkg/logger"
)

// Audio is the single narration slot a session may hold. A new narration
// request simply overwrites it; last writer wins.
type Audio struct {
	Bytes    []byte
	Filename string
}

type state struct {
	lastSeen time.Time
	script   string
	report   string
	audio    *Audio
}

// Store keeps per-session interactive state in memory. Nothing here
// survives a restart; idle sessions are dropped after the configured TTL.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*state
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*state),
	}
}

// Create registers a new session and returns its id.
func (s *Store) Create() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &state{lastSeen: time.Now()}
	return id, nil
}

// touch returns the session state, creating it on first use so upload
// flows don't depend on an explicit session handshake.
func (s *Store) touch(id string) *state {
	st, ok := s.sessions[id]
	if !ok {
		st = &state{}
		s.sessions[id] = st
	}
	st.lastSeen = time.Now()
	return st
}

// SetDocuments stores the narration script and report text of the
// session's most recent successful analysis.
func (s *Store) SetDocuments(id string, script string, report string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.touch(id)
	st.script = script
	st.report = report
}

// Documents returns the session's stored narration script and report.
func (s *Store) Documents(id string) (script string, report string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, found := s.sessions[id]
	if !found || st.script == "" {
		return "", "", false
	}
	st.lastSeen = time.Now()
	return st.script, st.report, true
}

// SetAudio overwrites the session's audio slot.
func (s *Store) SetAudio(id string, audio Audio) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.touch(id)
	st.audio = &audio
}

// Audio returns the session's audio slot, if one is live.
func (s *Store) Audio(id string) (Audio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, found := s.sessions[id]
	if !found || st.audio == nil {
		return Audio{}, false
	}
	st.lastSeen = time.Now()
	return *st.audio, true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle past the TTL and returns how many were removed.
func (s *Store) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, st := range s.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps periodically until stop is closed.
func (s *Store) RunSweeper(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Debug("Swept idle sessions", "removed", removed)
			}
		}
	}
}
