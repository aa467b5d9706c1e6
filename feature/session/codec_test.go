package session

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"list-control/feature/checklist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	codes := []string{"LBL001", "LBL002", "LBL003"}
	checks := []models.CheckRecord{
		{Code: "LBL002", Status: models.StatusFound, CheckedAt: now.Add(-time.Minute)},
		{Code: "LBL001", Status: models.StatusFound, CheckedAt: now},
	}

	rec := Encode(codes, checks, "AB12CD", now, DefaultTTL)
	assert.Equal(t, now.UnixMilli()+86400000, rec.ExpiresAt)
	assert.Equal(t, now.UnixMilli(), rec.CreatedAt)

	blob, err := json.Marshal(rec)
	require.NoError(t, err)

	decoded, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, decoded.ID)
	assert.Equal(t, codes, decoded.Codes)
	assert.Equal(t, rec.ExpiresAt, decoded.ExpiresAt)

	back := decoded.CheckRecords()
	require.Len(t, back, 2)
	assert.Equal(t, "LBL002", back[0].Code, "check order survives the round trip")
	assert.Equal(t, models.StatusFound, back[0].Status)
	assert.Equal(t, checks[1].CheckedAt.UnixMilli(), back[1].CheckedAt.UnixMilli())
}

func TestEncodeIsPure(t *testing.T) {
	now := time.Now()
	codes := []string{"LBL001"}

	rec := Encode(codes, nil, "AB12CD", now, DefaultTTL)
	codes[0] = "MUTATED"
	assert.Equal(t, "LBL001", rec.Codes[0], "encode must copy its inputs")
	assert.NotNil(t, rec.Checked)
	assert.Empty(t, rec.Checked)
}

func TestDecodeValidation(t *testing.T) {
	valid := `{"id":"AB12CD","data":["LBL001"],"checkedCodes":[],"createdAt":1,"expiresAt":2}`

	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{{{`},
		{"missing id", `{"data":[],"checkedCodes":[],"expiresAt":2}`},
		{"empty id", `{"id":"","data":[],"checkedCodes":[],"expiresAt":2}`},
		{"missing data", `{"id":"AB12CD","checkedCodes":[],"expiresAt":2}`},
		{"missing checkedCodes", `{"id":"AB12CD","data":[],"expiresAt":2}`},
		{"missing expiresAt", `{"id":"AB12CD","data":[],"checkedCodes":[]}`},
		{"negative expiresAt", `{"id":"AB12CD","data":[],"checkedCodes":[],"expiresAt":-5}`},
		{"mistyped data", `{"id":"AB12CD","data":"nope","checkedCodes":[],"expiresAt":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.blob))
			assert.ErrorIs(t, err, ErrBadRecord)
		})
	}

	rec, err := Decode([]byte(valid))
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", rec.ID)
}

func TestRecordExpired(t *testing.T) {
	now := time.Now()
	rec := Encode(nil, nil, "AB12CD", now, DefaultTTL)

	assert.False(t, rec.Expired(now))
	assert.False(t, rec.Expired(now.Add(DefaultTTL)), "boundary instant is still valid")
	assert.True(t, rec.Expired(now.Add(DefaultTTL+time.Millisecond)))
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, 6)
		for _, r := range id {
			assert.Contains(t, idAlphabet, string(r))
		}
		seen[id] = struct{}{}
	}
	// Not a collision guarantee, just a sanity check on randomness.
	assert.Greater(t, len(seen), 90)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	blob := `{"id":"AB12CD","data":[],"checkedCodes":[],"expiresAt":2,"extra":true}`
	_, err := Decode([]byte(blob))
	assert.NoError(t, err)
	assert.False(t, strings.Contains(blob, "createdAt"), "createdAt stays optional")
}
