package repository

import "errors"

// ErrNotFound is returned when a lookup for a single request finds no rows.
// Callers translate it into app_errors.ErrNotFound.
var ErrNotFound = errors.New("repository: not found")
