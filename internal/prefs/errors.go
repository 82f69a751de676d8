package prefs

import "errors"

// ErrStoreClosed is returned when operations are attempted on a closed store.
var ErrStoreClosed = errors.New("preference store is closed")

// ErrUnknownKey is returned when a caller names a preference key that
// does not exist. This is a caller defect, never an environmental one.
var ErrUnknownKey = errors.New("unknown preference key")

// ErrUnknownPreset is returned when a caller names a preset outside the
// fixed set.
var ErrUnknownPreset = errors.New("unknown preset")

// ErrPersistenceClosed is returned when operations are attempted on a
// closed persistence backend.
var ErrPersistenceClosed = errors.New("persistence is closed")
