package interp

import (
	"fmt"
	"strings"
)

// fragKind identifies what a word fragment contributes during substitution.
type fragKind int

const (
	fragText fragKind = iota // literal text, substituted for backslashes only in bare/quoted words
	fragVar                  // $name or ${name}
	fragCmd                  // [command substitution]
)

// fragment is one piece of a Word. A brace word always has exactly one
// fragText fragment holding its verbatim body. Bare and quoted words are
// split into a sequence of fragments at each $ and [ that introduces a
// substitution.
type fragment struct {
	kind fragKind
	text string // fragText: literal text (backslashes already decoded for bare/quoted)
	name string // fragVar: variable name
	cmds []*Command // fragCmd: the nested script to evaluate (its last result is substituted)
}

// Word is one word of a parsed command, still carrying its fragments;
// substitution happens at eval time because $var and [cmd] depend on
// runtime state.
type Word struct {
	frags []fragment
}

// Command is one command within a script: a sequence of words.
type Command struct {
	Words []Word
}

// ParseScript splits s into top-level commands, honoring spec.md §4.B's
// command separators (newline and semicolon) and word separators (space,
// tab), with brace/bracket/quote nesting tracked so separators inside them
// don't split the command.
func ParseScript(s string) ([]*Command, error) {
	var cmds []*Command
	pos := 0
	n := len(s)
	for pos < n {
		for pos < n && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\n' || s[pos] == '\r' || s[pos] == ';') {
			pos++
		}
		if pos < n && s[pos] == '#' {
			for pos < n && s[pos] != '\n' {
				if s[pos] == '\\' && pos+1 < n {
					pos++
				}
				pos++
			}
			continue
		}
		if pos >= n {
			break
		}
		cmd, next, err := parseCommand(s, pos)
		if err != nil {
			return nil, err
		}
		if len(cmd.Words) > 0 {
			cmds = append(cmds, cmd)
		}
		pos = next
	}
	return cmds, nil
}

func isCmdSep(c byte) bool { return c == '\n' || c == ';' }
func isWordSep(c byte) bool { return c == ' ' || c == '\t' }

// parseCommand parses a single command starting at pos and returns it
// along with the position just past its terminating separator (or EOF).
func parseCommand(s string, pos int) (*Command, int, error) {
	cmd := &Command{}
	n := len(s)
	for pos < n {
		for pos < n && isWordSep(s[pos]) {
			pos++
		}
		if pos >= n || isCmdSep(s[pos]) {
			if pos < n {
				pos++
			}
			break
		}
		if s[pos] == '\n' {
			pos++
			break
		}
		w, next, err := parseWord(s, pos)
		if err != nil {
			return nil, 0, err
		}
		cmd.Words = append(cmd.Words, w)
		pos = next
	}
	return cmd, pos, nil
}

// parseWord parses one word starting at pos (pos is not whitespace) and
// returns the position just past it.
func parseWord(s string, pos int) (Word, int, error) {
	switch s[pos] {
	case '{':
		return parseBraceWord(s, pos)
	case '"':
		return parseQuotedWord(s, pos)
	default:
		return parseBareWord(s, pos)
	}
}

// parseBraceWord reads a brace-delimited word verbatim: no substitution
// occurs inside it except that a backslash-newline sequence folds to a
// single space, per spec.md §4.B.
func parseBraceWord(s string, pos int) (Word, int, error) {
	n := len(s)
	start := pos
	depth := 1
	pos++
	for pos < n && depth > 0 {
		switch {
		case s[pos] == '\\' && pos+1 < n:
			pos += 2
			continue
		case s[pos] == '{':
			depth++
		case s[pos] == '}':
			depth--
		}
		pos++
	}
	if depth != 0 {
		return Word{}, 0, fmt.Errorf("missing close-brace")
	}
	body := s[start+1 : pos-1]
	body = foldBackslashNewlines(body)
	return Word{frags: []fragment{{kind: fragText, text: body}}}, pos, nil
}

func foldBackslashNewlines(s string) string {
	if !strings.Contains(s, "\\\n") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '\n' {
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseQuotedWord reads a "..."-delimited word, applying backslash, $var
// and [cmd] substitution to its contents.
func parseQuotedWord(s string, pos int) (Word, int, error) {
	n := len(s)
	pos++ // skip opening quote
	start := pos
	for pos < n && s[pos] != '"' {
		if s[pos] == '\\' && pos+1 < n {
			pos += 2
			continue
		}
		if s[pos] == '[' {
			end, err := findMatchingBracket(s, pos)
			if err != nil {
				return Word{}, 0, err
			}
			pos = end + 1
			continue
		}
		pos++
	}
	if pos >= n {
		return Word{}, 0, fmt.Errorf("missing \"")
	}
	body := s[start:pos]
	pos++ // skip closing quote
	frags, err := splitSubstitutions(body)
	if err != nil {
		return Word{}, 0, err
	}
	return Word{frags: frags}, pos, nil
}

// parseBareWord reads a word with no surrounding quote or brace, ending at
// the next unescaped whitespace, command separator or EOF.
func parseBareWord(s string, pos int) (Word, int, error) {
	n := len(s)
	start := pos
	for pos < n && !isWordSep(s[pos]) && !isCmdSep(s[pos]) {
		if s[pos] == '\\' && pos+1 < n {
			pos += 2
			continue
		}
		if s[pos] == '[' {
			end, err := findMatchingBracket(s, pos)
			if err != nil {
				return Word{}, 0, err
			}
			pos = end + 1
			continue
		}
		pos++
	}
	body := s[start:pos]
	frags, err := splitSubstitutions(body)
	if err != nil {
		return Word{}, 0, err
	}
	return Word{frags: frags}, pos, nil
}

// splitSubstitutions scans body (the inside of a bare or quoted word) and
// breaks it into a sequence of text/var/cmd fragments.
func splitSubstitutions(body string) ([]fragment, error) {
	var frags []fragment
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			frags = append(frags, fragment{kind: fragText, text: lit.String()})
			lit.Reset()
		}
	}
	n := len(body)
	i := 0
	for i < n {
		switch {
		case body[i] == '\\':
			dec, adv := decodeBackslash(body, i)
			lit.WriteString(dec)
			i += adv
		case body[i] == '$':
			name, adv, ok := parseVarName(body, i)
			if !ok {
				lit.WriteByte('$')
				i++
				continue
			}
			flushLit()
			frags = append(frags, fragment{kind: fragVar, name: name})
			i += adv
		case body[i] == '[':
			end, err := findMatchingBracket(body, i)
			if err != nil {
				return nil, err
			}
			inner := body[i+1 : end]
			cmds, err := ParseScript(inner)
			if err != nil {
				return nil, err
			}
			flushLit()
			frags = append(frags, fragment{kind: fragCmd, cmds: cmds})
			i = end + 1
		default:
			lit.WriteByte(body[i])
			i++
		}
	}
	flushLit()
	return frags, nil
}

// parseVarName parses a $name or ${name} reference starting at body[pos]
// (body[pos] must be '$'). Returns ok=false if '$' isn't actually followed
// by a valid variable reference, in which case it should be treated as a
// literal dollar sign.
func parseVarName(body string, pos int) (name string, adv int, ok bool) {
	n := len(body)
	if pos+1 >= n {
		return "", 0, false
	}
	if body[pos+1] == '{' {
		end := strings.IndexByte(body[pos+2:], '}')
		if end < 0 {
			return "", 0, false
		}
		end += pos + 2
		return body[pos+2 : end], end + 1 - pos, true
	}
	j := pos + 1
	for j < n && isVarNameChar(body[j]) {
		j++
	}
	if j == pos+1 {
		return "", 0, false
	}
	return body[pos+1 : j], j - pos, true
}

func isVarNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// findMatchingBracket returns the index of the ']' matching the '[' at
// s[open], skipping over brace-literal regions, quoted regions and
// backslash escapes so a nested nested command's own brackets don't
// confuse the scan.
func findMatchingBracket(s string, open int) (int, error) {
	n := len(s)
	i := open + 1
	depth := 1
	for i < n {
		switch s[i] {
		case '\\':
			if i+1 < n {
				i++
			}
		case '{':
			braceEnd, err := skipBraceLiteral(s, i)
			if err != nil {
				return 0, err
			}
			i = braceEnd
			continue
		case '"':
			qEnd, err := skipQuotedLiteral(s, i)
			if err != nil {
				return 0, err
			}
			i = qEnd
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
		i++
	}
	return 0, fmt.Errorf("missing close-bracket")
}

// skipBraceLiteral returns the index just past the '}' matching s[pos]=='{'.
func skipBraceLiteral(s string, pos int) (int, error) {
	n := len(s)
	depth := 1
	i := pos + 1
	for i < n && depth > 0 {
		if s[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if s[i] == '{' {
			depth++
		} else if s[i] == '}' {
			depth--
		}
		i++
	}
	if depth != 0 {
		return 0, fmt.Errorf("missing close-brace")
	}
	return i, nil
}

// skipQuotedLiteral returns the index just past the '"' matching s[pos]=='"'.
func skipQuotedLiteral(s string, pos int) (int, error) {
	n := len(s)
	i := pos + 1
	for i < n && s[i] != '"' {
		if s[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		i++
	}
	if i >= n {
		return 0, fmt.Errorf("missing \"")
	}
	return i + 1, nil
}

// IsComplete reports whether s forms a syntactically complete script: all
// braces, brackets and quotes balanced, with no dangling backslash-newline
// continuation. Used by the "info complete" command and by the REPL to
// decide whether to prompt for another line.
func IsComplete(s string) bool {
	n := len(s)
	i := 0
	braceDepth, bracketDepth := 0, 0
	inQuote := false
	for i < n {
		c := s[i]
		switch {
		case c == '\\' && i+1 < n:
			if s[i+1] == '\n' && i+2 == n {
				return false
			}
			i += 2
			continue
		case c == '\\' && i+1 == n:
			return false
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '{':
			braceDepth++
		case c == '}':
			braceDepth--
			if braceDepth < 0 {
				return true
			}
		case braceDepth == 0 && c == '"':
			inQuote = true
		case braceDepth == 0 && c == '[':
			bracketDepth++
		case braceDepth == 0 && c == ']':
			bracketDepth--
		}
		i++
	}
	return braceDepth == 0 && bracketDepth == 0 && !inQuote
}
