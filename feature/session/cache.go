package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cache is the local fallback store for session records. Every successful
// remote put/update is mirrored here, and reads fall back to it when the
// remote store is unreachable.
type Cache interface {
	Save(id string, h Handle, rec *Record) error
	Get(id string) (*Record, Handle, error)
	Delete(id string) error
}

// CachedSession is the persisted cache row. Last write wins; concurrent
// writers to the same id are not synchronized.
type CachedSession struct {
	SessionID string `gorm:"primaryKey;size:16"`
	Handle    string
	Payload   []byte
	UpdatedAt time.Time
}

// TableName sets the cache table name.
func (CachedSession) TableName() string {
	return "cached_sessions"
}

// DBCache persists session records in the local database.
type DBCache struct {
	db *gorm.DB
}

// NewDBCache migrates the cache table and returns a database-backed cache.
func NewDBCache(db *gorm.DB) (*DBCache, error) {
	if err := db.AutoMigrate(&CachedSession{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session cache: %w", err)
	}
	return &DBCache{db: db}, nil
}

// Save upserts the cache row for id.
func (c *DBCache) Save(id string, h Handle, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	row := CachedSession{
		SessionID: id,
		Handle:    string(h),
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// Get loads and decodes the cache row for id.
func (c *DBCache) Get(id string) (*Record, Handle, error) {
	var row CachedSession
	err := c.db.First(&row, "session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read session cache: %w", err)
	}
	rec, err := Decode(row.Payload)
	if err != nil {
		return nil, "", err
	}
	return rec, Handle(row.Handle), nil
}

// Delete evicts the cache row for id.
func (c *DBCache) Delete(id string) error {
	return c.db.Delete(&CachedSession{}, "session_id = ?", id).Error
}

// MemoryCache is the in-process fallback used when no database is available.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	handle  Handle
	payload []byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Save(id string, h Handle, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = memoryEntry{handle: h, payload: payload}
	return nil
}

func (c *MemoryCache) Get(id string) (*Record, Handle, error) {
	c.mu.Lock()
	entry, ok := c.entries[id]
	c.mu.Unlock()
	if !ok {
		return nil, "", ErrNotFound
	}
	rec, err := Decode(entry.payload)
	if err != nil {
		return nil, "", err
	}
	return rec, entry.handle, nil
}

func (c *MemoryCache) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}
