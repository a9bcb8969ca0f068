//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package dump formats byte strings for inspection.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/tabulate"
)

// Style specifies how byte values are formatted.
type Style int

// Byte formatting styles.
const (
	// Padded formats bytes with two hex digits: 0x01.
	Padded Style = iota
	// Minimal formats bytes without leading zeros: 0x1.
	Minimal
)

// Hex formats the byte value b as a lowercase hex literal.
func (s Style) Hex(b byte) string {
	if s == Minimal {
		return fmt.Sprintf("0x%x", b)
	}
	return fmt.Sprintf("0x%02x", b)
}

// List formats data as a list of quoted hex literals:
// ['0x01', '0x80'].
func List(data []byte, style Style) string {
	var sb strings.Builder
	sb.WriteRune('[')
	for idx, b := range data {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('\'')
		sb.WriteString(style.Hex(b))
		sb.WriteRune('\'')
	}
	sb.WriteRune(']')
	return sb.String()
}

// Table prints data as a table with one row per byte, showing the
// byte offset, the first bit index of the byte in the bit file, its
// hex value, and its bits.
func Table(w io.Writer, data []byte, style Style) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Offset").SetAlign(tabulate.MR)
	tab.Header("Bits").SetAlign(tabulate.MR)
	tab.Header("Hex").SetAlign(tabulate.ML)
	tab.Header("Binary").SetAlign(tabulate.ML)

	for idx, b := range data {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", idx))
		row.Column(fmt.Sprintf("%d-%d", idx*8, idx*8+7))
		row.Column(style.Hex(b))
		row.Column(fmt.Sprintf("%08b", b))
	}
	tab.Print(w)
}
