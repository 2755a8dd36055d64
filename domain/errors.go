package domain

import (
	"errors"
	"strings"
)

// ErrImageDecode is the only fatal condition of feature extraction: the
// uploaded bytes could not be interpreted as pixel data. Degenerate
// conditions inside the pipeline (no contours, no colors, empty wardrobe)
// are sentinel values, never errors.
var ErrImageDecode = errors.New("image could not be decoded as pixel data")

// MissingParameterError reports every absent required parameter of a
// recommendation request in a single error.
type MissingParameterError struct {
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return "missing required parameters: " + strings.Join(e.Fields, ", ")
}
