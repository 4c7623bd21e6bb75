package approvals

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store is a file-backed map of review id -> moderation approval. The whole
// map is rewritten on every mutation; the file is the durable copy but the
// in-memory map stays authoritative if a write fails.
type Store struct {
	mu        sync.Mutex
	path      string
	approvals map[string]bool
}

// New loads existing approval state from {dataDir}/approvals.json, creating
// the directory if needed. A missing or corrupt file is never fatal: the
// store starts fresh and logs a warning.
func New(dataDir string) *Store {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", dataDir).Msg("create data dir failed")
	}
	s := &Store{
		path:      filepath.Join(dataDir, "approvals.json"),
		approvals: make(map[string]bool),
	}
	s.load()
	return s
}

func (s *Store) load() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", s.path).Msg("no existing approval data, starting fresh")
			return
		}
		log.Warn().Err(err).Str("path", s.path).Msg("read approvals failed, starting fresh")
		return
	}
	var parsed map[string]bool
	if err := json.Unmarshal(b, &parsed); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("parse approvals failed, starting fresh")
		return
	}
	s.approvals = parsed
	log.Info().Int("count", len(parsed)).Str("path", s.path).Msg("loaded approval states")
}

// save rewrites the full map. Callers hold s.mu.
func (s *Store) save() {
	b, err := json.MarshalIndent(s.approvals, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("marshal approvals failed")
		return
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("write approvals failed")
	}
}

func (s *Store) Get(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.approvals[id]
}

func (s *Store) Set(id string, approved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals[id] = approved
	s.save()
}

func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := !s.approvals[id]
	s.approvals[id] = next
	s.save()
	return next
}

func (s *Store) ApprovedIDs() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]struct{})
	for id, ok := range s.approvals {
		if ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals = make(map[string]bool)
	s.save()
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ok := range s.approvals {
		if ok {
			n++
		}
	}
	return n
}
