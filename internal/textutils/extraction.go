// Package textutils provides text extraction helpers shared by the codecs.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

// Bank labels embed a BIC after a localized or an English marker,
// e.g. "БИК 044525545 АО Bank" or "BIC DEUTDEFF Deutsche Bank".
var bicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`БИК\s+(\S+)`),
	regexp.MustCompile(`BIC\s+(\S+)`),
}

// ExtractBIC returns the token following a BIC marker, or the whole trimmed
// label when no marker is present.
func ExtractBIC(label string) string {
	for _, re := range bicPatterns {
		if matches := re.FindStringSubmatch(label); len(matches) > 1 {
			return matches[1]
		}
	}
	return strings.TrimSpace(label)
}

// SubLines splits a multi-line cell into trimmed lines, dropping blank ones.
func SubLines(cell string) []string {
	var lines []string
	for _, line := range strings.Split(cell, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// RawLines splits a multi-line cell into trimmed lines and keeps blank ones,
// so a line's position in the cell is preserved.
func RawLines(cell string) []string {
	cell = strings.TrimRight(cell, "\r\n")
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	lines := strings.Split(cell, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// FirstLine returns the first non-blank line of s.
func FirstLine(s string) string {
	if lines := SubLines(s); len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// AppendSegment appends segment to text with sep unless text already carries
// it as a whole sep-delimited segment, so repeated application leaves text
// unchanged. A segment that only occurs inside a longer segment is appended.
func AppendSegment(text, sep, segment string) string {
	segment = strings.TrimSpace(segment)
	switch {
	case segment == "":
		return text
	case HasSegment(text, sep, segment):
		return text
	case text == "":
		return segment
	}
	return text + sep + segment
}

// HasSegment reports whether segment is one of the sep-delimited segments of
// text.
func HasSegment(text, sep, segment string) bool {
	return text == segment ||
		strings.HasPrefix(text, segment+sep) ||
		strings.HasSuffix(text, sep+segment) ||
		strings.Contains(text, sep+segment+sep)
}

// NormalizeForComparison lowercases s, drops punctuation and collapses runs of
// whitespace so that cosmetic differences do not count as changes.
func NormalizeForComparison(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}
