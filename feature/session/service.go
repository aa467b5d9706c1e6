package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"list-control/feature/checklist"

	"go.uber.org/zap"
)

// State is the session-sync state of this device.
type State string

const (
	// StateNone means no session is active; local state is device-owned.
	StateNone State = "none"
	// StateHosting means this device created the session and is the sole
	// writer pushing snapshots upstream.
	StateHosting State = "hosting"
	// StateJoined means this device loaded a shared session. Joined devices
	// are read-once followers and never push.
	StateJoined State = "joined"
)

// Service implements the session sync policy. It owns the session identity
// and decides when local state is pushed to the remote store.
type Service struct {
	mu     sync.Mutex
	store  *checklist.Store
	remote RemoteStore
	cache  Cache
	logger *zap.Logger
	cfg    Config

	state   State
	id      string
	handle  Handle
	pending int // checks recorded since the last push
}

// NewService creates a new session service.
func NewService(store *checklist.Store, remote RemoteStore, cache Cache, logger *zap.Logger, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.TTLHours <= 0 {
		cfg.TTLHours = 24
	}
	return &Service{
		store:  store,
		remote: remote,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
		state:  StateNone,
	}
}

func (s *Service) ttl() time.Duration {
	return time.Duration(s.cfg.TTLHours) * time.Hour
}

// ShareURL builds the join link for a session id.
func (s *Service) ShareURL(id string) string {
	return strings.TrimRight(s.cfg.PublicURL, "/") + "/join?session=" + id
}

// Create starts hosting a session built from the current run state and
// returns its id and share URL. When already hosting it forces an immediate
// out-of-band sync instead, independent of the batch counter, and returns
// the existing session.
func (s *Service) Create(ctx context.Context) (id, url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateHosting {
		s.pending = 0
		s.syncLocked(ctx)
		return s.id, s.ShareURL(s.id), nil
	}

	id, err = GenerateID()
	if err != nil {
		return "", "", err
	}

	s.state = StateHosting
	s.id = id
	s.handle = ""
	s.pending = 0
	s.syncLocked(ctx)

	s.logger.Info("Session created", zap.String("session_id", id))
	return id, s.ShareURL(id), nil
}

// CheckRecorded implements checklist.Listener. While hosting, every
// BatchSize-th recorded check triggers a full re-sync with a fresh expiry.
func (s *Service) CheckRecorded(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateHosting {
		return
	}
	s.pending++
	if s.pending < s.cfg.BatchSize {
		return
	}
	s.pending = 0
	s.syncLocked(ctx)
}

// RunReset implements checklist.Listener. A new check run drops the session
// identity unconditionally; in-flight pushes are not awaited, their late
// results are simply ignored.
func (s *Service) RunReset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateNone
	s.id = ""
	s.handle = ""
	s.pending = 0
}

// syncLocked rebuilds the session record from the current run state and
// writes it local-first, then best-effort to the remote store. Remote
// failures are logged and swallowed; they never reach the caller.
func (s *Service) syncLocked(ctx context.Context) {
	codes, checks := s.store.Snapshot()
	rec := Encode(codes, checks, s.id, time.Now(), s.ttl())

	if err := s.cache.Save(s.id, s.handle, rec); err != nil {
		s.logger.Warn("Session cache write failed", zap.Error(err))
	}

	if s.handle == "" {
		h, err := s.remote.Put(ctx, rec)
		if err != nil {
			s.logger.Warn("Session push failed, continuing local-only",
				zap.String("session_id", s.id), zap.Error(err))
			return
		}
		s.handle = h
	} else {
		if err := s.remote.Update(ctx, s.handle, rec); err != nil {
			s.logger.Warn("Session update failed, continuing local-only",
				zap.String("session_id", s.id), zap.Error(err))
			return
		}
	}

	// Mirror the handle so a restart can update in place.
	if err := s.cache.Save(s.id, s.handle, rec); err != nil {
		s.logger.Warn("Session cache write failed", zap.Error(err))
	}
	s.logger.Debug("Session synced", zap.String("session_id", s.id))
}

// Join loads a shared session by its 6-character code and adopts it as the
// local state. The lookup prefers a cached handle, then remote discovery,
// then the bare local cache. An expired record evicts its cache entry and
// reports ErrExpired; a total miss reports ErrNotFound. In both cases the
// prior state is untouched.
func (s *Service) Join(ctx context.Context, rawCode string) error {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, h := s.lookup(ctx, code)
	if rec == nil {
		return ErrNotFound
	}
	if rec.Expired(time.Now()) {
		if err := s.cache.Delete(code); err != nil {
			s.logger.Warn("Session cache eviction failed", zap.Error(err))
		}
		if h != "" {
			if err := s.remote.Remove(ctx, h); err != nil {
				s.logger.Warn("Dead session removal failed", zap.Error(err))
			}
		}
		return ErrExpired
	}

	s.store.ReplaceAll(rec.Codes, rec.CheckRecords())
	s.state = StateJoined
	s.id = code
	s.handle = h
	s.pending = 0

	s.logger.Info("Session joined",
		zap.String("session_id", code),
		zap.Int("codes", len(rec.Codes)),
		zap.Int("checked", len(rec.Checked)),
	)
	return nil
}

// lookup resolves a session record: cached handle first, then remote
// discovery, then the local cache. Returns nil when nothing was found.
func (s *Service) lookup(ctx context.Context, id string) (*Record, Handle) {
	cachedRec, cachedHandle, cacheErr := s.cache.Get(id)

	if cacheErr == nil && cachedHandle != "" {
		rec, err := s.remote.GetByHandle(ctx, cachedHandle)
		if err == nil {
			return rec, cachedHandle
		}
		s.logger.Warn("Remote session fetch failed, using cached copy",
			zap.String("session_id", id), zap.Error(err))
		return cachedRec, cachedHandle
	}

	rec, h, err := s.remote.FindBySessionID(ctx, id)
	if err == nil {
		return rec, h
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.Warn("Remote session discovery failed",
			zap.String("session_id", id), zap.Error(err))
	}
	if cacheErr == nil {
		return cachedRec, cachedHandle
	}
	return nil, ""
}

// Status returns the current sync state and, when a session is active, its
// id and share URL.
func (s *Service) Status() (state State, id, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id == "" {
		return s.state, "", ""
	}
	return s.state, s.id, s.ShareURL(s.id)
}
