package interp

import (
	"fmt"
	"strings"
)

// isListSep reports whether c is a list-element separator: spec.md §4.A
// says TAB, LF, VT, FF, CR and SPACE all separate elements, with newline
// treated as a plain separator (unlike script parsing).
func isListSep(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseList parses s as a TCL list string, per spec.md §4.A.
func ParseList(s string) ([]string, error) {
	var items []string
	pos := 0
	n := len(s)
	for pos < n {
		for pos < n && isListSep(s[pos]) {
			pos++
		}
		if pos >= n {
			break
		}
		var elem string
		switch s[pos] {
		case '{':
			start := pos
			depth := 1
			pos++
			for pos < n && depth > 0 {
				if s[pos] == '\\' && pos+1 < n {
					pos += 2
					continue
				}
				if s[pos] == '{' {
					depth++
				} else if s[pos] == '}' {
					depth--
				}
				pos++
			}
			if depth != 0 {
				return nil, fmt.Errorf("unmatched open brace in list")
			}
			elem = s[start+1 : pos-1]
			if pos < n && !isListSep(s[pos]) {
				return nil, fmt.Errorf("list element in braces followed by %q instead of space", rune(s[pos]))
			}
		case '"':
			start := pos + 1
			pos++
			for pos < n && s[pos] != '"' {
				if s[pos] == '\\' && pos+1 < n {
					pos += 2
					continue
				}
				pos++
			}
			if pos >= n {
				return nil, fmt.Errorf("unmatched open quote in list")
			}
			raw := s[start:pos]
			pos++
			if pos < n && !isListSep(s[pos]) {
				return nil, fmt.Errorf("list element in quotes followed by %q instead of space", rune(s[pos]))
			}
			elem = substBackslashes(raw)
		default:
			start := pos
			for pos < n && !isListSep(s[pos]) {
				if s[pos] == '\\' && pos+1 < n {
					pos += 2
					continue
				}
				pos++
			}
			elem = substBackslashes(s[start:pos])
		}
		items = append(items, elem)
	}
	return items, nil
}

// needsQuoting reports whether s contains a character that keeps it from
// being emitted as a bare list element.
func needsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r', '{', '}', '[', ']', '$', '"', ';', '\\':
			return true
		}
	}
	return false
}

// bracesBalance reports whether braces in s are balanced, ignoring
// backslash-escaped braces (they are skipped, not counted).
func bracesBalance(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// endsWithUnescapedBackslash reports whether s has an odd run of trailing backslashes.
func endsWithUnescapedBackslash(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// formatElement renders a single canonical list element, per spec.md §4.A:
// bare if possible, else brace-quoted if braces balance and it doesn't end
// in an unescaped backslash, else backslash-escaped.
func formatElement(s string) string {
	if s == "" {
		return "{}"
	}
	if !needsQuoting(s) {
		return s
	}
	if bracesBalance(s) && !endsWithUnescapedBackslash(s) {
		return "{" + s + "}"
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' {
			// Backslash-newline would decode back to a space; use \n instead.
			b.WriteString(`\n`)
			continue
		}
		switch c {
		case ' ', '\t', '\v', '\f', '\r', '{', '}', '[', ']', '$', '"', ';', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FormatList renders elems as a canonical list string, per spec.md §4.A.
// The output round-trips: ParseList(FormatList(elems)) == elems.
func FormatList(elems []string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = formatElement(e)
	}
	return strings.Join(parts, " ")
}
