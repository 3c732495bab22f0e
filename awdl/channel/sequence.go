package channel

import (
	"fmt"

	"github.com/Frostie314159/awdl-frame-parser/awdl/tlv"
)

// Count is the fixed number of channels in a Sequence.
const Count = 16

const (
	seqHeaderLen  = 6
	seqPaddingLen = 3
)

// Sequence is the channel hopping schedule.
type Sequence struct {
	Encoding       Encoding
	DuplicateCount uint8
	// StepCount is the number of availability windows spent on each entry.
	// The wire stores StepCount-1.
	StepCount   uint8
	FillChannel uint16
	Channels    [Count]Channel
	// Padding holds the trailing octets verbatim; the zero value encodes as zeros.
	Padding [seqPaddingLen]byte
}

// MakeSequence creates a Sequence where every entry is ch.
func MakeSequence(stepCount uint8, ch Channel) (seq Sequence) {
	seq.Encoding = ch.Encoding
	seq.StepCount = stepCount
	seq.FillChannel = 0xFFFF
	for i := range seq.Channels {
		seq.Channels[i] = ch
	}
	return seq
}

// SizeOf returns the encoded size of a Sequence in the given encoding.
func SizeOf(enc Encoding) (n int, ok bool) {
	w, ok := enc.Width()
	return seqHeaderLen + Count*w + seqPaddingLen, ok
}

// Size returns encoded size.
func (seq Sequence) Size() int {
	n, _ := SizeOf(seq.Encoding)
	return n
}

// Read decodes a Sequence.
// A stored channel count other than 16 or an unknown encoding is ErrValueNotUnderstood.
func (seq *Sequence) Read(r *tlv.Reader) error {
	count := int(r.U8()) + 1
	seq.Encoding = Encoding(r.U8())
	seq.DuplicateCount = r.U8()
	seq.StepCount = r.U8() + 1
	seq.FillChannel = r.U16()
	if e := r.Err(); e != nil {
		return e
	}
	if count != Count {
		return fmt.Errorf("channel count %d: %w", count, tlv.ErrValueNotUnderstood)
	}

	for i := range seq.Channels {
		ch, e := Read(r, seq.Encoding)
		if e != nil {
			return e
		}
		seq.Channels[i] = ch
	}
	copy(seq.Padding[:], r.Slice(seqPaddingLen))
	return r.Err()
}

// Field implements tlv.Fielder interface.
// Every channel must use seq.Encoding.
func (seq Sequence) Field() tlv.Field {
	if _, ok := seq.Encoding.Width(); !ok {
		return tlv.FieldError(fmt.Errorf("channel encoding %s: %w", seq.Encoding, tlv.ErrValueNotUnderstood))
	}

	fields := []tlv.Field{
		tlv.U8(Count - 1),
		tlv.U8(uint8(seq.Encoding)),
		tlv.U8(seq.DuplicateCount),
		tlv.U8(seq.StepCount - 1),
		tlv.U16(seq.FillChannel),
	}
	for i, ch := range seq.Channels {
		if ch.Encoding != seq.Encoding {
			return tlv.FieldError(fmt.Errorf("channel %d is %s in %s sequence: %w", i, ch.Encoding, seq.Encoding, tlv.ErrValueNotUnderstood))
		}
		fields = append(fields, ch.Field())
	}
	fields = append(fields, tlv.Bytes(seq.Padding[:]))

	return tlv.Fields(fields...)
}

// Distinct returns primary channel numbers in hop order, without repeats.
func (seq Sequence) Distinct() (list []uint8) {
	seen := map[uint8]bool{}
	for _, ch := range seq.Channels {
		if p := ch.Primary(); !seen[p] {
			seen[p] = true
			list = append(list, p)
		}
	}
	return list
}
