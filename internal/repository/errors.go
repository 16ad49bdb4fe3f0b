// Package repository holds the in-memory collections the services work
// against. Each repository keeps insertion order so that exported files
// come out in the same order they were read in. Sentinel errors live
// here so higher layers can distinguish failure cases without string
// matching.
package repository

import "errors"

// ErrNotFound is returned when a lookup by identifier misses.
var ErrNotFound = errors.New("not found")

// ErrSeatNotAvailable is returned when a seat is not in a session's
// available list.
var ErrSeatNotAvailable = errors.New("seat not available")

// ErrUserExists is returned when registering a username that is
// already taken.
var ErrUserExists = errors.New("username already exists")
