package repository

import "errors"

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrOpenEntryExists indicates the worker already has an open entry; the
// data layer allows at most one per worker.
var ErrOpenEntryExists = errors.New("open entry already exists")
