package pathargs

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a path argument with an optional line/column locator, as
// written on the command line in goto mode: FILE[:LINE[:COLUMN]].
type Location struct {
	Path string

	// HasLine reports whether a line was given. Column is always set
	// alongside Line and defaults to 1.
	HasLine bool
	Line    int
	Column  int
}

// FormatError is returned when a goto argument does not contain a path.
type FormatError struct {
	Arg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format for goto should be FILE:LINE(:COLUMN), got %q", e.Arg)
}

// ParseLocation splits a trailing :line[:column] locator off raw.
//
// Segments are walked left to right. Numeric segments become the line and
// then the column; every other segment is joined back onto the path with
// ':' so drive letters survive ("C:\file.txt:10:3"). Numeric segments
// seen before any path segment are still consumed as line/column.
func ParseLocation(raw string) (Location, error) {
	var (
		loc       Location
		path      []string
		hasColumn bool
	)

	for _, seg := range strings.Split(raw, ":") {
		n, ok := parseSegment(seg)
		switch {
		case !ok:
			path = append(path, seg)
		case !loc.HasLine:
			loc.HasLine = true
			loc.Line = n
		case !hasColumn:
			hasColumn = true
			loc.Column = n
		}
	}

	loc.Path = strings.Join(path, ":")
	if loc.Path == "" {
		return Location{}, &FormatError{Arg: raw}
	}

	if loc.HasLine && !hasColumn {
		loc.Column = 1
	}
	return loc, nil
}

// parseSegment reports whether seg is a locator number. Blank segments
// count as 0, so "file:" carries line 0 and ":::" has no path at all.
//
// Decimal integers may carry a sign ("-1", "+3") and keep leading zeros
// decimal ("010" is 10). Unsigned 0x, 0o and 0b literals are accepted too.
// Fractions, exponents and out-of-range values stay part of the path.
func parseSegment(seg string) (int, bool) {
	s := strings.TrimSpace(seg)
	if s == "" {
		return 0, true
	}
	if strings.Contains(s, "_") {
		return 0, false
	}

	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}
	if base == 10 && s[0] == '+' {
		s = s[1:]
		if s == "" || s[0] == '+' || s[0] == '-' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, base, 0)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// String serializes the location as path[:line[:column]].
func (l Location) String() string {
	if !l.HasLine {
		return l.Path
	}
	return l.Path + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}
