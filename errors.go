// Package bookmarks keeps per-document bookmark collections for a
// page-oriented document viewer. Bookmarks are grouped by the file they
// belong to, and each group records a 64-bit fingerprint of the file taken
// when its first bookmark was created.
//
// The store lives in memory. Persisting it is the host's job: call Save
// when the state should reach disk and Load or Open at startup. The whole
// store is serialised as a single JSON document under the user's
// configuration directory.
package bookmarks

import "errors"

// Sentinel errors for programmatic handling. Returned errors wrap these, so
// callers use errors.Is. I/O failures also wrap the underlying fs error.
var (
	ErrIO                = errors.New("i/o failure")
	ErrCorruptStore      = errors.New("corrupt bookmark store")
	ErrNoHome            = errors.New("no home directory could be determined")
	ErrContractViolation = errors.New("command must be handled by the host")
	ErrInvalidAlgorithm  = errors.New("unknown fingerprint algorithm")
	ErrUnknownCommand    = errors.New("unknown command")
)
