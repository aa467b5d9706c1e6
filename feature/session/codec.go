package session

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"list-control/feature/checklist/models"
)

// DefaultTTL is the validity window of a shared session.
const DefaultTTL = 24 * time.Hour

const (
	idLength   = 6
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Record is the shareable snapshot of a check run. Timestamps are epoch
// milliseconds; the wire field names are part of the shared-session format.
type Record struct {
	// ID is the 6-character share code.
	ID string `json:"id"`
	// Codes is the full checklist in load order.
	Codes []string `json:"data"`
	// Checked lists the check records in first-check order.
	Checked []CheckedCode `json:"checkedCodes"`
	// CreatedAt is when this snapshot was encoded.
	CreatedAt int64 `json:"createdAt"`
	// ExpiresAt is CreatedAt plus the session TTL.
	ExpiresAt int64 `json:"expiresAt"`
}

// CheckedCode is one check record on the wire.
type CheckedCode struct {
	Code      string `json:"code"`
	Status    string `json:"status"`
	CheckedAt int64  `json:"checkedAt"`
}

// Encode builds a Record from the current run state. It is a pure function;
// the expiry is always now plus ttl, so every re-encode extends the window.
func Encode(codes []string, checks []models.CheckRecord, id string, now time.Time, ttl time.Duration) *Record {
	rec := &Record{
		ID:        id,
		Codes:     append([]string(nil), codes...),
		Checked:   make([]CheckedCode, 0, len(checks)),
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
	for _, c := range checks {
		rec.Checked = append(rec.Checked, CheckedCode{
			Code:      c.Code,
			Status:    string(c.Status),
			CheckedAt: c.CheckedAt.UnixMilli(),
		})
	}
	return rec
}

// Decode parses and validates a session payload. The wire payload is not
// trusted: missing or mistyped fields are rejected here rather than
// surfacing later as zero values. Expiry freshness is deliberately NOT
// checked; that is the caller's decision point.
func Decode(blob []byte) (*Record, error) {
	var aux struct {
		ID        *string        `json:"id"`
		Codes     *[]string      `json:"data"`
		Checked   *[]CheckedCode `json:"checkedCodes"`
		CreatedAt int64          `json:"createdAt"`
		ExpiresAt *int64         `json:"expiresAt"`
	}
	if err := json.Unmarshal(blob, &aux); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	switch {
	case aux.ID == nil || *aux.ID == "":
		return nil, fmt.Errorf("%w: missing id", ErrBadRecord)
	case aux.Codes == nil:
		return nil, fmt.Errorf("%w: missing data", ErrBadRecord)
	case aux.Checked == nil:
		return nil, fmt.Errorf("%w: missing checkedCodes", ErrBadRecord)
	case aux.ExpiresAt == nil || *aux.ExpiresAt < 0:
		return nil, fmt.Errorf("%w: missing or negative expiresAt", ErrBadRecord)
	}
	return &Record{
		ID:        *aux.ID,
		Codes:     *aux.Codes,
		Checked:   *aux.Checked,
		CreatedAt: aux.CreatedAt,
		ExpiresAt: *aux.ExpiresAt,
	}, nil
}

// Expired reports whether the record is past its validity window.
func (r *Record) Expired(now time.Time) bool {
	return now.UnixMilli() > r.ExpiresAt
}

// CheckRecords converts the wire entries back into checklist check records.
func (r *Record) CheckRecords() []models.CheckRecord {
	out := make([]models.CheckRecord, 0, len(r.Checked))
	for _, c := range r.Checked {
		out = append(out, models.CheckRecord{
			Code:      c.Code,
			Status:    models.CheckStatus(c.Status),
			CheckedAt: time.UnixMilli(c.CheckedAt),
		})
	}
	return out
}

// GenerateID returns a 6-character share code drawn uniformly from [A-Z0-9].
// Collisions are not checked against existing records; at this scale the
// birthday bound is an accepted risk.
func GenerateID() (string, error) {
	max := big.NewInt(int64(len(idAlphabet)))
	buf := make([]byte, idLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate session id: %w", err)
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return string(buf), nil
}
