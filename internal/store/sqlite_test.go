package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famomatic/ytscribe/client"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache", "videos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id, title string) *client.VideoRecord {
	return &client.VideoRecord{
		ID:            id,
		Title:         title,
		Author:        "Some Creator",
		ThumbnailURL:  "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg",
		LengthSeconds: 213,
		Transcript:    "hello there",
		ViewCount:     "12,345 views",
		PublishedAt:   "2024-03-01",
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := record("dQw4w9WgXcQ", "First")
	require.NoError(t, s.Put(ctx, want))

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, *want, *got)
}

func TestGetAbsent(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestExists(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put(ctx, record("dQw4w9WgXcQ", "x")))
	ok, err = s.Exists(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPutUpsertIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, record("dQw4w9WgXcQ", "Old title")))
	require.NoError(t, s.Put(ctx, record("dQw4w9WgXcQ", "New title")))

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, "New title", got.Title)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestPutRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	require.Error(t, s.Put(context.Background(), &client.VideoRecord{}))
	require.Error(t, s.Put(context.Background(), nil))
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, record("aaaaaaaaaaa", "A")))
	require.NoError(t, s.Put(ctx, record("bbbbbbbbbbb", "B")))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	ids := []string{records[0].ID, records[1].ID}
	require.ElementsMatch(t, []string{"aaaaaaaaaaa", "bbbbbbbbbbb"}, ids)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, record("dQw4w9WgXcQ", "x")))
	require.NoError(t, s.Delete(ctx, "dQw4w9WgXcQ"))

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Nil(t, got)

	// Absent ids delete without error.
	require.NoError(t, s.Delete(ctx, "dQw4w9WgXcQ"))
}
