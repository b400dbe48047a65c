package contact

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSubmitAndCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := Submission{Name: "X", Email: "x@x.com", Message: "hi", FeedbackType: "Bug Report"}
	require.NoError(t, s.Submit(ctx, sub))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDuplicateSubmissionsAreBothStored(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := Submission{Name: "X", Email: "x@x.com", Message: "hi", FeedbackType: "Bug Report"}
	require.NoError(t, s.Submit(ctx, sub))
	require.NoError(t, s.Submit(ctx, sub))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "second identical submission must not error or dedupe")

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	for _, r := range recent {
		assert.Equal(t, "X", r.Name)
		assert.Equal(t, "Bug Report", r.FeedbackType)
	}
}

func TestSubmitStampsTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	require.NoError(t, s.Submit(ctx, Submission{Name: "Y", Email: "y@y.com", Message: "hello", FeedbackType: "Question"}))

	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Timestamp.Before(before.Truncate(time.Second)), "zero timestamp must be stamped at submit time")
}

func TestExplicitTimestampRoundTrips(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.Local)
	require.NoError(t, s.Submit(ctx, Submission{Name: "Z", Email: "z@z.com", Message: "m", FeedbackType: "Others", Timestamp: ts}))

	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Timestamp.Equal(ts))
}

func TestOpenCreatesTableLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
