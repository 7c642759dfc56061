package easydb

import (
	"strings"
)

// FormatParamFunc renders the driver placeholder for the i-th (1-based)
// placeholder occurrence.
//
//	MySQL/SQLite: func(int) string { return "?" }
//	Postgres:     func(i int) string { return fmt.Sprintf("$%d", i) }
type FormatParamFunc = func(int) string

// Statement is SQL whose :name placeholders were rewritten for a driver.
type Statement struct {
	SQL SQLQuery

	// Names has one entry per placeholder occurrence, in order, so a name
	// used twice appears twice.
	Names []Identifier
}

type scanState struct {
	src   string
	n     int
	i     int
	last  int
	out   strings.Builder
	names []Identifier
}

func newScanState(sqlText SQLQuery) *scanState {
	return &scanState{
		src:   string(sqlText),
		n:     len(sqlText),
		names: make([]Identifier, 0),
	}
}

func (s *scanState) peek(k int) (b byte) {
	if s.i+k < s.n {
		b = s.src[s.i+k]
	}
	return b
}

// consumeQuoted skips a quoted string or identifier. A doubled quote is an
// escaped quote; inside ' and " strings a backslash escapes the next byte.
func (s *scanState) consumeQuoted(quote byte) {
	s.i++
	for s.i < s.n {
		c := s.src[s.i]
		s.i++
		if c == '\\' && quote != '`' {
			s.i++
			continue
		}
		if c != quote {
			continue
		}
		if s.i < s.n && s.src[s.i] == quote {
			s.i++
			continue
		}
		goto end
	}
	s.i = s.n
end:
	return
}

func (s *scanState) consumeBracketIdent() {
	end := strings.IndexByte(s.src[s.i:], ']')
	if end < 0 {
		s.i = s.n
		return
	}
	s.i += end + 1
}

func (s *scanState) consumeLineComment() {
	for s.i < s.n && s.src[s.i] != '\n' {
		s.i++
	}
}

func (s *scanState) consumeBlockComment() {
	end := strings.Index(s.src[s.i+2:], "*/")
	if end < 0 {
		s.i = s.n
		return
	}
	s.i += 2 + end + 2
}

func (s *scanState) consumePlaceholder(formatFunc FormatParamFunc) (err error) {
	var name string

	start := s.i // Points to ':'
	j := s.i + 1
	for j < s.n && isIdentifierChar(s.src[j]) {
		j++
	}
	name = s.src[start+1 : j]
	if j < s.n && (s.src[j] == '.' || s.src[j] == '[') {
		err = NewErr(
			ErrInvalidPlaceholderName,
			"name", s.src[start+1:j+1],
			"offset", start,
		)
		goto end
	}

	s.names = append(s.names, Identifier(name))
	s.out.WriteString(s.src[s.last:start])
	s.out.WriteString(formatFunc(len(s.names)))
	s.last = j
	s.i = j
end:
	return err
}

func (s *scanState) statement() Statement {
	if s.last == 0 {
		return Statement{SQL: SQLQuery(s.src), Names: s.names}
	}
	s.out.WriteString(s.src[s.last:])
	return Statement{SQL: SQLQuery(s.out.String()), Names: s.names}
}

// ParsePlaceholders finds :name placeholders OUTSIDE of strings, quoted
// identifiers and comments, and rewrites each occurrence with formatFunc.
// A :: cast and a colon not followed by an identifier are left alone.
func ParsePlaceholders(sqlText SQLQuery, formatFunc FormatParamFunc) (st Statement, err error) {
	var state *scanState

	if formatFunc == nil {
		err = ErrFormatParamFuncRequired
		goto end
	}

	state = newScanState(sqlText)

	for state.i < state.n {
		switch state.src[state.i] {
		case '-':
			if state.peek(1) == '-' {
				state.consumeLineComment()
				continue
			}
		case '#':
			state.consumeLineComment()
			continue
		case '/':
			if state.peek(1) == '*' {
				state.consumeBlockComment()
				continue
			}
		case '\'', '"', '`':
			state.consumeQuoted(state.src[state.i])
			continue
		case '[':
			state.consumeBracketIdent()
			continue
		case ':':
			if state.peek(1) == ':' {
				state.i += 2
				continue
			}
			if isIdentifierStart(state.peek(1)) {
				err = state.consumePlaceholder(formatFunc)
				if err != nil {
					goto end
				}
				continue
			}
		}
		state.i++
	}

	st = state.statement()
end:
	return st, err
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

func isIdentifierChar(b byte) bool {
	return isIdentifierStart(b) || (b >= '0' && b <= '9')
}
