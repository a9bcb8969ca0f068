//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package bits

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// HeaderMode specifies how the first line of a bit file is handled.
type HeaderMode int

// Header modes.
const (
	// NoHeader specifies that all lines of the file are bits.
	NoHeader HeaderMode = iota
	// SkipHeader discards the first line without looking at it.
	SkipHeader
	// CheckHeader requires the first line to hold the number of
	// bit lines that follow it.
	CheckHeader
)

var headerModes = map[HeaderMode]string{
	NoHeader:    "none",
	SkipHeader:  "skip",
	CheckHeader: "check",
}

func (m HeaderMode) String() string {
	name, ok := headerModes[m]
	if ok {
		return name
	}
	return fmt.Sprintf("{HeaderMode %d}", m)
}

// IOError is returned when a bit file can't be read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadFile reads the bit file path. The header argument specifies how
// the file's first line is processed. The file is closed before
// ReadFile returns.
func ReadFile(path string, header HeaderMode) ([]bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	first := 1
	if header != NoHeader {
		if len(lines) == 0 {
			return nil, &ParseError{
				Path: path,
				Line: 1,
				Msg:  "missing header line",
			}
		}
		hdr := lines[0]
		lines = lines[1:]
		first++

		if header == CheckHeader {
			seq, err := ParseLines(lines, first)
			if err != nil {
				err.(*ParseError).Path = path
				return nil, err
			}
			count, err := strconv.Atoi(strings.TrimSpace(hdr))
			if err != nil {
				return nil, &ParseError{
					Path:  path,
					Line:  1,
					Value: hdr,
					Msg:   fmt.Sprintf("invalid header '%s'", hdr),
				}
			}
			if count != len(seq) {
				return nil, &ParseError{
					Path:  path,
					Line:  1,
					Value: hdr,
					Msg: fmt.Sprintf("header declares %d bits, file has %d",
						count, len(seq)),
				}
			}
			return seq, nil
		}
	}

	seq, err := ParseLines(lines, first)
	if err != nil {
		err.(*ParseError).Path = path
		return nil, err
	}
	return seq, nil
}

// ReadBytes reads the bit file path and packs its bits into bytes.
func ReadBytes(path string, header HeaderMode) ([]byte, error) {
	seq, err := ReadFile(path, header)
	if err != nil {
		return nil, err
	}
	data, err := Pack(seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{
				Path: path,
				Line: len(lines) + 1,
				Msg:  "line too long",
			}
		}
		return nil, &IOError{
			Path: path,
			Err:  err,
		}
	}
	return lines, nil
}

// WriteFile writes the bit sequence seq into the file path, one bit
// per line. If header is true, the first line holds the number of
// bits.
func WriteFile(path string, seq []bool, header bool) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{
			Path: path,
			Err:  err,
		}
	}
	w := bufio.NewWriter(f)
	if header {
		fmt.Fprintf(w, "%d\n", len(seq))
	}
	for _, bit := range seq {
		if bit {
			w.WriteString("1\n")
		} else {
			w.WriteString("0\n")
		}
	}
	err = w.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &IOError{
			Path: path,
			Err:  err,
		}
	}
	return nil
}
