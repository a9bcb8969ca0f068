//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package bits

import (
	"fmt"
	"strings"
)

// ParseError describes an invalid line in a bit file.
type ParseError struct {
	Path  string
	Line  int
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	var loc string
	if len(e.Path) > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	} else {
		loc = fmt.Sprintf("line %d", e.Line)
	}
	if len(e.Msg) > 0 {
		return fmt.Sprintf("%s: %s", loc, e.Msg)
	}
	return fmt.Sprintf("%s: invalid bit value '%s'", loc, e.Value)
}

// ParseBit parses a bit line. The line must be 0 or 1, optionally
// surrounded by white space.
func ParseBit(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, &ParseError{
			Value: line,
		}
	}
}

// ParseLines parses the lines into a bit sequence. The argument first
// specifies the line number of lines[0] and it is used in error
// messages. Empty lines at the end of the input are ignored.
func ParseLines(lines []string, first int) ([]bool, error) {
	end := len(lines)
	for end > 0 && len(strings.TrimSpace(lines[end-1])) == 0 {
		end--
	}

	result := make([]bool, 0, end)
	for idx, line := range lines[:end] {
		bit, err := ParseBit(line)
		if err != nil {
			err.(*ParseError).Line = first + idx
			return nil, err
		}
		result = append(result, bit)
	}
	return result, nil
}
