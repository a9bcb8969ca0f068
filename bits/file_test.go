//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package bits

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bits.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func bitLines(data []byte) string {
	var sb strings.Builder
	for _, bit := range Unpack(data) {
		if bit {
			sb.WriteString("1\n")
		} else {
			sb.WriteString("0\n")
		}
	}
	return sb.String()
}

func TestParseBit(t *testing.T) {
	for _, line := range []string{"0", "0\r", " 0 "} {
		bit, err := ParseBit(line)
		if err != nil || bit {
			t.Errorf("ParseBit(%q)=%v,%v", line, bit, err)
		}
	}
	bit, err := ParseBit("1")
	if err != nil || !bit {
		t.Errorf("ParseBit(1)=%v,%v", bit, err)
	}
	for _, line := range []string{"", "2", "01", "x", "-1", "true"} {
		_, err := ParseBit(line)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseBit(%q): expected ParseError, got %v", line, err)
		}
	}
}

func TestParseLinesLineNumber(t *testing.T) {
	_, err := ParseLines([]string{"0", "1", "7", "0"}, 2)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 4 {
		t.Errorf("got line %d, expected 4", perr.Line)
	}
}

func TestParseLinesBlank(t *testing.T) {
	seq, err := ParseLines([]string{"1", "0", "", " "}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 2 {
		t.Errorf("got %d bits, expected 2", len(seq))
	}
	_, err = ParseLines([]string{"1", "", "0"}, 1)
	if err == nil {
		t.Errorf("blank line in the middle accepted")
	}
}

func TestReadFileNoHeader(t *testing.T) {
	path := writeTemp(t, "0\n0\n0\n0\n0\n0\n0\n1\n")
	data, err := ReadBytes(path, NoHeader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0x01}) {
		t.Errorf("got %x, expected 01", data)
	}
}

func TestReadFileSkipHeader(t *testing.T) {
	key := []byte("0123456789abcdef")

	// The header value is never consulted.
	for _, hdr := range []string{"128", "7", "garbage"} {
		path := writeTemp(t, hdr+"\n"+bitLines(key))
		data, err := ReadBytes(path, SkipHeader)
		if err != nil {
			t.Fatalf("header %q: %v", hdr, err)
		}
		if len(data) != 16 {
			t.Errorf("header %q: got %d bytes", hdr, len(data))
		}
		if !bytes.Equal(data, key) {
			t.Errorf("header %q: got %x, expected %x", hdr, data, key)
		}
	}
}

func TestReadFileCheckHeader(t *testing.T) {
	body := bitLines([]byte{0xca, 0xfe})

	path := writeTemp(t, "16\n"+body)
	if _, err := ReadFile(path, CheckHeader); err != nil {
		t.Fatalf("valid header rejected: %v", err)
	}

	for _, hdr := range []string{"15", "128", "sixteen"} {
		path := writeTemp(t, hdr+"\n"+body)
		_, err := ReadFile(path, CheckHeader)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("header %q: expected ParseError, got %v", hdr, err)
		}
		if perr.Line != 1 {
			t.Errorf("header %q: error at line %d", hdr, perr.Line)
		}
	}
}

func TestReadFileMissingHeader(t *testing.T) {
	path := writeTemp(t, "")
	_, err := ReadFile(path, SkipHeader)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestReadFileParseError(t *testing.T) {
	path := writeTemp(t, "1\n0\nz\n")
	_, err := ReadFile(path, NoHeader)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != path || perr.Line != 3 {
		t.Errorf("got %s:%d, expected %s:3", perr.Path, perr.Line, path)
	}
}

func TestReadFileLengthError(t *testing.T) {
	path := writeTemp(t, "1\n0\n1\n")
	_, err := ReadBytes(path, NoHeader)
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
}

func TestReadFileIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := ReadFile(path, NoHeader)
	var ioerr *IOError
	if !errors.As(err, &ioerr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("IOError does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	path := filepath.Join(t.TempDir(), "input.txt")

	if err := WriteFile(path, Unpack(data), true); err != nil {
		t.Fatal(err)
	}
	got, err := ReadBytes(path, CheckHeader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %x, expected %x", got, data)
	}

	if err := WriteFile(path, Unpack(data), false); err != nil {
		t.Fatal(err)
	}
	got, err = ReadBytes(path, NoHeader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %x, expected %x", got, data)
	}
}

func TestReadFileLongLine(t *testing.T) {
	path := writeTemp(t, "1\n0\n"+strings.Repeat("0", 70000)+"\n")
	_, err := ReadFile(path, NoHeader)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 3 {
		t.Errorf("got line %d, expected 3", perr.Line)
	}
	var ioerr *IOError
	if errors.As(err, &ioerr) {
		t.Errorf("long line reported as IOError: %v", err)
	}
}
