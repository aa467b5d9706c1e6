package checklist

import (
	"strings"
	"sync"
	"time"

	"list-control/feature/checklist/models"
)

// Canonical returns the canonical form of a code: trimmed and uppercased.
func Canonical(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Canonicalize maps raw rows to canonical codes, dropping empty rows and
// duplicates. The first occurrence of a duplicate wins and insertion order
// is preserved.
func Canonicalize(rows []string) []string {
	codes := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		code := Canonical(row)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// Store is the application state for a check run: the loaded checklist and
// the map of check records. It is safe for concurrent use.
//
// The checklist is immutable once loaded except for wholesale replacement;
// check records are add-only within a run.
type Store struct {
	mu     sync.RWMutex
	codes  []string
	index  map[string]struct{}
	checks map[string]models.CheckRecord
	order  []string // canonical codes in first-check order
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.codes = nil
	s.index = make(map[string]struct{})
	s.checks = make(map[string]models.CheckRecord)
	s.order = nil
}

// Replace swaps in a new checklist wholesale and clears all check records.
// Codes must already be canonical (see Canonicalize).
func (s *Store) Replace(codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.codes = append(s.codes, codes...)
	for _, c := range s.codes {
		s.index[c] = struct{}{}
	}
}

// ReplaceAll swaps in a checklist and a set of check records in one step.
// Used when adopting a shared session as the new local state.
func (s *Store) ReplaceAll(codes []string, checks []models.CheckRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.codes = append(s.codes, codes...)
	for _, c := range s.codes {
		s.index[c] = struct{}{}
	}
	for _, rec := range checks {
		key := Canonical(rec.Code)
		if _, dup := s.checks[key]; !dup {
			s.order = append(s.order, key)
		}
		s.checks[key] = rec
	}
}

// Clear resets the store to an empty list and empty check map.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Lookup reports whether code is a member of the checklist. The comparison
// is case-insensitive; stored codes are canonical, so canonicalizing the
// probe suffices.
func (s *Store) Lookup(code string) bool {
	key := Canonical(code)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[key]
	return ok
}

// MarkFound upserts the check record for a canonical code. Re-checking an
// already-found code refreshes its timestamp.
func (s *Store) MarkFound(code string, now time.Time) models.CheckRecord {
	key := Canonical(code)
	rec := models.CheckRecord{
		Code:      key,
		Status:    models.StatusFound,
		CheckedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.checks[key]; !dup {
		s.order = append(s.order, key)
	}
	s.checks[key] = rec
	return rec
}

// Codes returns a copy of the checklist in load order.
func (s *Store) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Check returns the check record for a code, if any.
func (s *Store) Check(code string) (models.CheckRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.checks[Canonical(code)]
	return rec, ok
}

// Snapshot returns the checklist and the check records in first-check order.
func (s *Store) Snapshot() ([]string, []models.CheckRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, len(s.codes))
	copy(codes, s.codes)
	checks := make([]models.CheckRecord, 0, len(s.order))
	for _, key := range s.order {
		checks = append(checks, s.checks[key])
	}
	return codes, checks
}

// Counts returns the checklist size and the number of checked entries.
func (s *Store) Counts() (total, checked int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.codes), len(s.checks)
}
