package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// SaveVideo fetches a video's detail and transcript and writes the
// record to the store. A cache hit short-circuits with status "exists"
// and no network traffic; a miss runs the pipeline and returns status
// "saved".
func (c *Client) SaveVideo(ctx context.Context, id string) (*VideoRecord, error) {
	return c.acquire(ctx, id, true)
}

// PeekVideo runs the same pipeline as SaveVideo but never writes to the
// store. Cached records are returned as-is with status "exists".
func (c *Client) PeekVideo(ctx context.Context, id string) (*VideoRecord, error) {
	return c.acquire(ctx, id, false)
}

func (c *Client) acquire(ctx context.Context, id string, persist bool) (*VideoRecord, error) {
	if c.config.Store == nil {
		return nil, ErrNoStore
	}
	videoID, err := channelsExtract(id)
	if err != nil {
		return nil, err
	}

	cached, err := c.config.Store.Get(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("store get %s: %w", videoID, err)
	}
	if cached != nil {
		cached.Status = StatusExists
		return cached, nil
	}

	record, err := c.FetchVideoDetail(ctx, videoID)
	if err != nil {
		return nil, err
	}
	text, err := c.FetchTranscript(ctx, videoID)
	if err != nil && !errors.Is(err, ErrNoTranscript) {
		return nil, err
	}
	if err != nil {
		// Transcript-less records are still worth caching; the field
		// stays empty and the miss is logged once.
		c.logger.Warnf("no transcript for %s: %v", videoID, err)
	}
	record.Transcript = text

	if !persist {
		return record, nil
	}
	if err := c.config.Store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("store put %s: %w", videoID, err)
	}
	record.Status = StatusSaved
	return record, nil
}

// SaveResult is one entry of a bulk save outcome: the record on
// success, the error otherwise. ID is always set.
type SaveResult struct {
	ID     string
	Record *VideoRecord
	Err    error
}

// SaveVideos saves a batch of ids with per-item isolation: one failure
// never aborts the rest. Fetch parallelism is bounded by
// Config.SaveConcurrency; results come back in input order.
func (c *Client) SaveVideos(ctx context.Context, ids []string) ([]SaveResult, error) {
	if c.config.Store == nil {
		return nil, ErrNoStore
	}
	results := make([]SaveResult, len(ids))
	sem := make(chan struct{}, c.config.SaveConcurrency)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			record, err := c.SaveVideo(ctx, id)
			results[i] = SaveResult{ID: id, Record: record, Err: err}
			if err != nil {
				c.logger.Warnf("save %s: %v", id, err)
			} else {
				c.logger.Infof("save %s: %s", id, record.Status)
			}
		}(i, id)
	}
	wg.Wait()
	return results, nil
}

// SavedVideos lists every cached record, most recently added first.
func (c *Client) SavedVideos(ctx context.Context) ([]VideoRecord, error) {
	if c.config.Store == nil {
		return nil, ErrNoStore
	}
	return c.config.Store.List(ctx)
}

// DeleteVideo removes a record from the cache.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	if c.config.Store == nil {
		return ErrNoStore
	}
	videoID, err := channelsExtract(id)
	if err != nil {
		return err
	}
	return c.config.Store.Delete(ctx, videoID)
}
