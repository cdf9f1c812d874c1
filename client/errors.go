package client

import "errors"

var (
	// ErrInvalidInput indicates malformed input (not a video/playlist id or url).
	ErrInvalidInput = errors.New("invalid input")
	// ErrChannelNotFound indicates the channel query could not be resolved.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrNoTranscript indicates transcript acquisition exhausted its attempts.
	ErrNoTranscript = errors.New("no transcript available")
	// ErrEmptyResult indicates an operation completed with zero usable items.
	ErrEmptyResult = errors.New("empty result")
	// ErrNoStore indicates a cache operation was called without a configured store.
	ErrNoStore = errors.New("no store configured")
)
