package tlv

import "io"

// Decoder iterates over a sequence of TLV elements without allocating a collection.
//
// Decoder is a slice header over the input: copying a Decoder value restarts iteration from the copy's position.
// Elements returned by Next alias the input buffer; they are valid only while the buffer is not modified.
type Decoder []byte

// Rest returns unconsumed input.
func (d Decoder) Rest() []byte {
	return []byte(d)
}

// EOF returns true if decoder is at end of input.
func (d Decoder) EOF() bool {
	return len(d) == 0
}

// Next decodes the next element.
// It returns io.EOF at end of input, and leaves the Decoder unchanged on any error.
func (d *Decoder) Next() (element Element, e error) {
	if d.EOF() {
		return Element{}, io.EOF
	}
	rest, e := element.Decode(*d)
	if e != nil {
		return Element{}, e
	}
	*d = rest
	return element, nil
}

// Each calls f on every remaining element until f returns false.
// End of input is not an error.
func (d *Decoder) Each(f func(element Element) bool) error {
	for {
		element, e := d.Next()
		switch e {
		case nil:
		case io.EOF:
			return nil
		default:
			return e
		}
		if !f(element) {
			return nil
		}
	}
}

// Elements decodes all remaining elements.
func (d *Decoder) Elements() (list []Element, e error) {
	e = d.Each(func(element Element) bool {
		list = append(list, element)
		return true
	})
	return list, e
}

// DecodeAll decodes a TLV sequence that extends to the end of wire.
// Each Element.Value aliases wire.
func DecodeAll(wire []byte) ([]Element, error) {
	d := Decoder(wire)
	return d.Elements()
}

// DecodeFirst extracts the first TLV element.
func DecodeFirst(wire []byte) (element Element, rest []byte, e error) {
	rest, e = element.Decode(wire)
	return
}
