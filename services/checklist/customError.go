package checklist

import "errors"

// ErrInvalidCabin is returned when a record names a cabin outside the
// configured 1..CabinCount set.
var ErrInvalidCabin = errors.New("cabin number out of range")

// ErrInvalidField is returned when an enumerated field holds a value outside
// its allowed set. Out-of-range quantities are clamped, not rejected.
var ErrInvalidField = errors.New("invalid field value")
