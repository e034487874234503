// Package common defines shared constants and sentinel errors used across
// MediaVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors (connection refused, DNS, timeouts).
	ErrNetwork = errors.New("network error")

	// Non-2xx response from the backend.
	ErrServer = errors.New("server error")

	// Response body could not be normalized into the canonical item shape.
	ErrDecode = errors.New("decode error")

	// Mutation target absent from the effective collection.
	ErrNotFound = errors.New("not found")

	// Upload-specific failure; wraps server status/detail where available.
	ErrUpload = errors.New("upload failed")

	// The optimistic local write succeeded but the remote call did not.
	// Local state is durable; the remote side has not seen the change.
	ErrRemoteSyncPending = errors.New("saved locally, remote sync pending")
)
