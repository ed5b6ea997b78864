package db

import "errors"

// ErrNotFound reports that a scoped lookup or mutation matched no row owned by
// the caller.
var ErrNotFound = errors.New("record not found")
