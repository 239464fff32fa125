package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Lexer is the pull interface the parser consumes tokens through.
// Once the input is exhausted, Next returns an EndOfInput token on every call.
type Lexer interface {
	Next() Token
}

// Scanner is the reference Lexer for Kaleido source text.
type Scanner struct {
	source

	litBuf strings.Builder
}

// NewScanner creates a Scanner for src.
// errh is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next scans and returns the next token.
func (s *Scanner) Next() Token {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	pos := s.pos()

	switch {
	case s.ch < 0:
		return Token{Kind: EndOfInput, Pos: pos}

	case s.ch == '#':
		s.skipComment()
		goto redo

	case isLetter(s.ch):
		lit := s.scanIdent()
		return Token{Kind: LookupKeyword(lit), Text: lit, Pos: pos}

	case isNumberChar(s.ch):
		return Token{Kind: Number, Text: s.scanNumber(), Pos: pos}
	}

	ch := s.ch
	s.nextch()
	kind, ok := punctuation[ch]
	if !ok {
		s.errorAt(pos, fmt.Sprintf("unexpected character %q", ch))
		return Token{Kind: Illegal, Text: string(ch), Pos: pos}
	}
	return Token{Kind: kind, Text: string(ch), Pos: pos}
}

// punctuation maps single-character tokens to their kind.
var punctuation = map[rune]Kind{
	'(': LParen,
	')': RParen,
	',': Comma,
	'{': LBrace,
	'}': RBrace,
	';': Semicolon,
	'=': Equal,
	'<': Less,
	'>': Greater,
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
}

// scanIdent scans [A-Za-z][A-Za-z0-9]*.
func (s *Scanner) scanIdent() string {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	return s.litBuf.String()
}

// scanNumber scans [0-9.]+. Validation of the literal is left to the parser.
func (s *Scanner) scanNumber() string {
	s.litBuf.Reset()
	for isNumberChar(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	return s.litBuf.String()
}

// skipComment skips from '#' to the end of the line.
func (s *Scanner) skipComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
