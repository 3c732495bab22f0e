package tlv

import (
	"errors"
	"strconv"
)

// Error conditions.
var (
	ErrTooLittleData      = errors.New("too little data")
	ErrValueNotUnderstood = errors.New("value not understood")
	ErrIncorrectTlvType   = errors.New("incorrect TLV-TYPE")
	ErrIncorrectTlvLength = errors.New("incorrect TLV-LENGTH")
	ErrErrorField         = errors.New("Error(nil) field")
)

// ShortError indicates input ended before a structurally required region.
// It wraps ErrTooLittleData or another sentinel, and reports how many more octets were needed.
type ShortError struct {
	Err    error
	Needed int
}

// TooLittleData returns a ShortError that wraps ErrTooLittleData.
func TooLittleData(needed int) error {
	return &ShortError{Err: ErrTooLittleData, Needed: needed}
}

func (e *ShortError) Error() string {
	return e.Err.Error() + ": need " + strconv.Itoa(e.Needed) + " more octets"
}

func (e *ShortError) Unwrap() error {
	return e.Err
}
