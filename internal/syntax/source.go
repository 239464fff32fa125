package syntax

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// source feeds runes to the scanner one at a time, tracking the position of
// the current rune. Input is consumed incrementally, so an interactive
// reader is only read as far as the scanner has asked for.
type source struct {
	in       *bufio.Reader
	filename string

	ch        rune // current rune, -1 at end of input
	line, col int  // position of ch
	eof       bool

	errh func(pos Pos, msg string)
}

func newSource(filename string, src io.Reader, errh func(pos Pos, msg string)) *source {
	s := &source{
		in:       bufio.NewReader(src),
		filename: filename,
		line:     1,
		errh:     errh,
	}
	s.nextch()
	return s
}

// nextch makes the following rune current. At end of input it is a no-op.
func (s *source) nextch() {
	if s.eof {
		return
	}
	if s.ch == '\n' {
		s.line, s.col = s.line+1, 1
	} else {
		s.col++
	}

	r, size, err := s.in.ReadRune()
	switch {
	case err == io.EOF:
		s.ch, s.eof = -1, true
	case err != nil:
		s.error("error reading source: " + err.Error())
		s.ch, s.eof = -1, true
	default:
		if r == utf8.RuneError && size == 1 {
			s.error("invalid UTF-8 encoding")
		}
		s.ch = r
	}
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// error reports msg at the current rune.
func (s *source) error(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// Character classes. Identifiers and keywords are ASCII only.

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// isNumberChar reports whether r may appear in a number literal.
func isNumberChar(r rune) bool { return isDigit(r) || r == '.' }

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
