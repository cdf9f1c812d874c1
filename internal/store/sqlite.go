// Package store is the SQLite-backed video cache behind client.Store.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/famomatic/ytscribe/client"
)

// SQLite implements client.Store on a local database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path, creating parent
// directories as needed.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS videos (
		video_id       TEXT PRIMARY KEY,
		title          TEXT,
		author         TEXT,
		thumbnail_url  TEXT,
		length_seconds INTEGER,
		transcript     TEXT,
		view_count     TEXT,
		published_at   TEXT,
		date_added     DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Exists reports whether a record with the id is cached.
func (s *SQLite) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM videos WHERE video_id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: exists %s: %w", id, err)
	}
	return true, nil
}

// Get returns the cached record, or (nil, nil) when absent.
func (s *SQLite) Get(ctx context.Context, id string) (*client.VideoRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT video_id, title, author, thumbnail_url,
		length_seconds, transcript, view_count, published_at
		FROM videos WHERE video_id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return rec, nil
}

// Put inserts or replaces a record. The upsert keeps concurrent saves
// of the same id convergent; date_added survives replacement.
func (s *SQLite) Put(ctx context.Context, record *client.VideoRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("store: record without id")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO videos
		(video_id, title, author, thumbnail_url, length_seconds, transcript, view_count, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			thumbnail_url = excluded.thumbnail_url,
			length_seconds = excluded.length_seconds,
			transcript = excluded.transcript,
			view_count = excluded.view_count,
			published_at = excluded.published_at`,
		record.ID, record.Title, record.Author, record.ThumbnailURL,
		record.LengthSeconds, record.Transcript, record.ViewCount, record.PublishedAt)
	if err != nil {
		return fmt.Errorf("store: put %s: %w", record.ID, err)
	}
	return nil
}

// List returns all cached records, most recently added first.
func (s *SQLite) List(ctx context.Context) ([]client.VideoRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT video_id, title, author, thumbnail_url,
		length_seconds, transcript, view_count, published_at
		FROM videos ORDER BY date_added DESC, video_id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var records []client.VideoRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list scan: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list rows: %w", err)
	}
	return records, nil
}

// Delete removes a record. Deleting an absent id is not an error.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE video_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*client.VideoRecord, error) {
	var rec client.VideoRecord
	var title, author, thumb, transcript, viewCount, published sql.NullString
	var length sql.NullInt64
	err := row.Scan(&rec.ID, &title, &author, &thumb, &length, &transcript, &viewCount, &published)
	if err != nil {
		return nil, err
	}
	rec.Title = title.String
	rec.Author = author.String
	rec.ThumbnailURL = thumb.String
	rec.LengthSeconds = int(length.Int64)
	rec.Transcript = transcript.String
	rec.ViewCount = viewCount.String
	rec.PublishedAt = published.String
	return &rec, nil
}
