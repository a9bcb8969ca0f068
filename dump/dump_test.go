//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package dump

import (
	"bytes"
	"strings"
	"testing"
)

var listTests = []struct {
	data  []byte
	style Style
	want  string
}{
	{
		data:  nil,
		style: Padded,
		want:  "[]",
	},
	{
		data:  []byte{0x01},
		style: Padded,
		want:  "['0x01']",
	},
	{
		data:  []byte{0x01, 0x80, 0xff, 0x00},
		style: Padded,
		want:  "['0x01', '0x80', '0xff', '0x00']",
	},
	{
		data:  []byte{0x01, 0x80, 0xff, 0x00},
		style: Minimal,
		want:  "['0x1', '0x80', '0xff', '0x0']",
	},
	{
		data:  []byte{0xab, 0xcd},
		style: Minimal,
		want:  "['0xab', '0xcd']",
	},
}

func TestList(t *testing.T) {
	for idx, test := range listTests {
		got := List(test.data, test.style)
		if got != test.want {
			t.Errorf("test %d: got %s, expected %s", idx, got, test.want)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []byte{0xa5, 0x01}, Padded)
	out := buf.String()
	for _, want := range []string{"0xa5", "10100101", "0x01", "00000001",
		"8-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("table does not contain %q:\n%s", want, out)
		}
	}
}
