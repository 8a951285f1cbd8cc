// Package tuplekey encodes tuples of byte strings into single
// order-preserving keys for a sorted key-value store.
//
// Each tuple element is re-coded from 8-bit bytes into 7-bit groups. Every
// output byte carries the group in its top seven bits and a continuation
// marker in its low bit: 1 means more bytes of this element follow, 0 ends
// the element. Elements are therefore self-delimiting, packed keys compare
// bytewise in tuple order, and packing a tuple prefix yields a byte prefix
// of every extension of that tuple.
package tuplekey

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("tuplekey: corrupt encoding")

// Encode7 re-codes data into 7-bit coded bytes. The result is empty only
// for empty input.
func Encode7(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	groups := make([]byte, 0, (len(data)*8+6)/7)
	var acc uint
	var nbits uint
	for _, b := range data {
		acc = acc<<8 | uint(b)
		nbits += 8
		for nbits >= 7 {
			nbits -= 7
			groups = append(groups, byte(acc>>nbits)&0x7f)
		}
	}
	if nbits > 0 {
		// Pad the final group with low zero bits.
		groups = append(groups, byte(acc<<(7-nbits))&0x7f)
	}

	out := make([]byte, len(groups))
	for i, g := range groups {
		if i < len(groups)-1 {
			out[i] = g<<1 | 1
		} else {
			out[i] = g << 1
		}
	}
	return out
}

// Decode7 reverses Encode7. The final coded byte must have a clear
// continuation bit and the padding bits must be zero.
func Decode7(coded []byte) ([]byte, error) {
	if len(coded) == 0 {
		return nil, nil
	}
	var out []byte
	var acc uint
	var nbits uint
	for i, b := range coded {
		last := i == len(coded)-1
		if cont := b&1 == 1; cont == last {
			return nil, fmt.Errorf("%w: continuation bit at byte %d", ErrCorrupt, i)
		}
		acc = acc<<7 | uint(b>>1)
		nbits += 7
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
	}
	if acc&(1<<nbits-1) != 0 {
		return nil, fmt.Errorf("%w: nonzero padding", ErrCorrupt)
	}
	return out, nil
}

// Tuple is an ordered compound key. Elements may hold arbitrary bytes.
type Tuple []string

// HasPrefix reports whether t begins with the elements of prefix.
func (t Tuple) HasPrefix(prefix Tuple) bool {
	if len(prefix) > len(t) {
		return false
	}
	for i, e := range prefix {
		if t[i] != e {
			return false
		}
	}
	return true
}

// Pack encodes the tuple into a single order-preserving key. An empty
// element encodes as one terminator byte, so Pack is injective.
func Pack(t Tuple) []byte {
	var buf []byte
	for _, elem := range t {
		coded := Encode7([]byte(elem))
		if len(coded) == 0 {
			coded = []byte{0}
		}
		buf = append(buf, coded...)
	}
	return buf
}

// Unpack splits a packed key back into its tuple elements.
func Unpack(packed []byte) (Tuple, error) {
	var t Tuple
	for len(packed) > 0 {
		end := -1
		for i, b := range packed {
			if b&1 == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated element", ErrCorrupt)
		}
		elem, err := Decode7(packed[:end+1])
		if err != nil {
			return nil, err
		}
		t = append(t, string(elem))
		packed = packed[end+1:]
	}
	return t, nil
}

// PrefixSuccessor returns the smallest key strictly greater than every key
// beginning with packed, or nil when no such bound exists.
func PrefixSuccessor(packed []byte) []byte {
	for i := len(packed) - 1; i >= 0; i-- {
		if packed[i] != 0xff {
			succ := bytes.Clone(packed[:i+1])
			succ[i]++
			return succ
		}
	}
	return nil
}
