package awdl

import (
	"errors"

	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// Error conditions.
var (
	ErrHeaderIncomplete = errors.New("action frame header incomplete")
	ErrInvalidMagic     = errors.New("invalid action frame magic")
)

// HeaderIncomplete returns a tlv.ShortError that wraps ErrHeaderIncomplete.
func HeaderIncomplete(missing int) error {
	return &tlv.ShortError{Err: ErrHeaderIncomplete, Needed: missing}
}
