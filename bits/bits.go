//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package bits converts the per-bit text files produced by garbled
// circuit protocol runs into packed byte strings. Bits are packed
// MSB-first: the first bit of each group of eight is the most
// significant bit of the byte. This is the same order the protocol
// uses when it serializes its output wires.
package bits

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// LengthError is returned when a bit sequence can't be packed into
// whole bytes.
type LengthError struct {
	Bits int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bit count %d is not a multiple of 8", e.Bits)
}

// Pack packs the bit sequence into bytes. The length of seq must be a
// multiple of 8. The bit seq[8g+i] is the bit 7-i of the result byte
// g.
func Pack(seq []bool) ([]byte, error) {
	if len(seq)%8 != 0 {
		return nil, &LengthError{
			Bits: len(seq),
		}
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(seq)/8))
	w := bitio.NewWriter(buf)
	for _, bit := range seq {
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack expands data into its bits, 8 bits per byte, most
// significant bit first. Unpack is the inverse of Pack.
func Unpack(data []byte) []bool {
	r := bitio.NewReader(bytes.NewReader(data))
	result := make([]bool, len(data)*8)
	for i := range result {
		bit, err := r.ReadBool()
		if err != nil {
			// The loop never reads past the end of data.
			panic(err)
		}
		result[i] = bit
	}
	return result
}
