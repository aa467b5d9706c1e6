package session

import (
	"path/filepath"
	"testing"
	"time"

	"list-control/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDBCache(t *testing.T) *DBCache {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   filepath.Join(t.TempDir(), "cache.db"),
	})
	require.NoError(t, err)
	cache, err := NewDBCache(db)
	require.NoError(t, err)
	return cache
}

func TestDBCacheSaveGet(t *testing.T) {
	cache := newTestDBCache(t)
	rec := Encode([]string{"LBL001"}, nil, "AB12CD", time.Now(), DefaultTTL)

	require.NoError(t, cache.Save("AB12CD", Handle("sessions/AB12CD-x.json"), rec))

	got, h, err := cache.Get("AB12CD")
	require.NoError(t, err)
	assert.Equal(t, Handle("sessions/AB12CD-x.json"), h)
	assert.Equal(t, rec.Codes, got.Codes)
	assert.Equal(t, rec.ExpiresAt, got.ExpiresAt)
}

func TestDBCacheSaveUpserts(t *testing.T) {
	cache := newTestDBCache(t)
	first := Encode([]string{"LBL001"}, nil, "AB12CD", time.Now(), DefaultTTL)
	second := Encode([]string{"LBL001", "LBL002"}, nil, "AB12CD", time.Now(), DefaultTTL)

	require.NoError(t, cache.Save("AB12CD", "", first))
	require.NoError(t, cache.Save("AB12CD", Handle("sessions/AB12CD-x.json"), second))

	got, h, err := cache.Get("AB12CD")
	require.NoError(t, err)
	assert.Equal(t, Handle("sessions/AB12CD-x.json"), h)
	assert.Len(t, got.Codes, 2)
}

func TestDBCacheGetMiss(t *testing.T) {
	cache := newTestDBCache(t)

	_, _, err := cache.Get("ZZ99ZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDBCacheDelete(t *testing.T) {
	cache := newTestDBCache(t)
	rec := Encode(nil, nil, "AB12CD", time.Now(), DefaultTTL)
	require.NoError(t, cache.Save("AB12CD", "", rec))

	require.NoError(t, cache.Delete("AB12CD"))
	_, _, err := cache.Get("AB12CD")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, cache.Delete("AB12CD"), "deleting a missing row is not an error")
}

func TestDBCacheGetQueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	cache := &DBCache{db: gormDB}
	_, _, err = cache.Get("AB12CD")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	rec := Encode([]string{"LBL001"}, nil, "AB12CD", time.Now(), DefaultTTL)

	_, _, err := cache.Get("AB12CD")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, cache.Save("AB12CD", Handle("h"), rec))
	got, h, err := cache.Get("AB12CD")
	require.NoError(t, err)
	assert.Equal(t, Handle("h"), h)
	assert.Equal(t, rec.Codes, got.Codes)

	require.NoError(t, cache.Delete("AB12CD"))
	_, _, err = cache.Get("AB12CD")
	assert.ErrorIs(t, err, ErrNotFound)
}
