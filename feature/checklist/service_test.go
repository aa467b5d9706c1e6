package checklist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingListener struct {
	checks int
	resets int
}

func (l *recordingListener) CheckRecorded(ctx context.Context) { l.checks++ }
func (l *recordingListener) RunReset(ctx context.Context)      { l.resets++ }

func newTestService() (*Service, *Store) {
	store := NewStore()
	return NewService(store, "LBL", zap.NewNop()), store
}

func TestServiceLoad(t *testing.T) {
	svc, store := newTestService()

	count, err := svc.Load(strings.NewReader("a1\nA1\nb2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"A1", "B2"}, store.Codes())
}

func TestServiceLoadBadInputKeepsState(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.Load(strings.NewReader("lbl001\n"))
	require.NoError(t, err)

	_, err = svc.Load(strings.NewReader("\x00\x01\x02"))
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, []string{"LBL001"}, store.Codes(), "failed load must not touch state")
}

func TestServiceCheckFound(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.Load(strings.NewReader("LBL001\n"))
	require.NoError(t, err)

	code, found := svc.Check(context.Background(), "001")
	assert.True(t, found)
	assert.Equal(t, "LBL001", code)

	rec, ok := store.Check("LBL001")
	require.True(t, ok)
	assert.Equal(t, "LBL001", rec.Code)
}

func TestServiceCheckMiss(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.Load(strings.NewReader("LBL001\n"))
	require.NoError(t, err)

	code, found := svc.Check(context.Background(), "999")
	assert.False(t, found)
	assert.Equal(t, "LBL999", code)

	_, checked := store.Counts()
	assert.Zero(t, checked, "a miss must not mutate state")
}

func TestServiceListenerNotification(t *testing.T) {
	svc, _ := newTestService()
	listener := &recordingListener{}
	svc.SetListener(listener)

	_, err := svc.Load(strings.NewReader("LBL001\nLBL002\n"))
	require.NoError(t, err)

	svc.Check(context.Background(), "001")
	svc.Check(context.Background(), "999") // miss, no notification
	svc.Check(context.Background(), "002")
	assert.Equal(t, 2, listener.checks)

	svc.Reset(context.Background())
	svc.Reset(context.Background())
	assert.Equal(t, 2, listener.resets)

	total, checked := svc.Store().Counts()
	assert.Zero(t, total)
	assert.Zero(t, checked)
}

func TestServiceRowsFilter(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Load(strings.NewReader("LBL001\nLBL002\nXYZ9\n"))
	require.NoError(t, err)

	rows := svc.Rows("lbl00")
	require.Len(t, rows, 2)
	assert.Equal(t, "LBL001", rows[0].Code)
	assert.Equal(t, "LBL002", rows[1].Code)

	assert.Len(t, svc.Rows(""), 3)
	assert.Empty(t, svc.Rows("nope"))
}
