package types

import "errors"

// Vocabulary construction errors. Both are fatal to translator setup.
var (
	ErrDuplicateKey = errors.New("duplicate item key")
	ErrInvalidKey   = errors.New("invalid item key")
)

// ErrTypeMismatch is returned when two translators of different flavors are merged.
var ErrTypeMismatch = errors.New("translator flavor mismatch")

// ErrMalformedSnapshot reports that a universal snapshot lacks slots, slots.gui,
// slots.gui.type, or slots.gui.slots. Translators absorb it and yield the
// no-op mapping for the tick.
var ErrMalformedSnapshot = errors.New("malformed universal snapshot")

// ErrMalformedEvent reports that a hero event has no usable inventory list.
// Translators absorb it the same way as ErrMalformedSnapshot.
var ErrMalformedEvent = errors.New("malformed hero event")

// ErrModeUnknown is returned when a dump format other than hero or universal is requested.
var ErrModeUnknown = errors.New("unknown dump mode")
