// Package syntax implements lexical and syntactic analysis for the Kaleido
// expression language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the lexical category of a token.
type Kind uint

const (
	// Special tokens
	Illegal    Kind = iota // character the scanner could not classify
	EndOfInput             // end of input; repeated forever once reached

	// Literals
	Number     // 1, 3.14, .5
	Identifier // foo, x1

	// Delimiters
	LParen    // (
	RParen    // )
	Comma     // ,
	LBrace    // {
	RBrace    // }
	Semicolon // ; (top-level separator only)

	// Binary operators
	Equal   // =
	Less    // <
	Greater // >
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /

	// Keywords
	Def
	Extern
	If
	Then
	Else
	For
	In
	Var

	kindCount
)

var kindNames = [...]string{
	Illegal:    "ILLEGAL",
	EndOfInput: "EOF",

	Number:     "NUMBER",
	Identifier: "IDENT",

	LParen:    "(",
	RParen:    ")",
	Comma:     ",",
	LBrace:    "{",
	RBrace:    "}",
	Semicolon: ";",

	Equal:   "=",
	Less:    "<",
	Greater: ">",
	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",

	Def:    "def",
	Extern: "extern",
	If:     "if",
	Then:   "then",
	Else:   "else",
	For:    "for",
	In:     "in",
	Var:    "var",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Quote returns the kind as it appears in diagnostics: punctuation and
// keywords in single quotes, the other categories by name.
func (k Kind) Quote() string {
	switch k {
	case EndOfInput:
		return "end of input"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case Illegal:
		return "illegal character"
	}
	return "'" + k.String() + "'"
}

// binopPrecedence holds the binding power of every binary operator.
// Zero entries are not operators. Higher binds tighter.
var binopPrecedence = [kindCount]int{
	Equal:   2,
	Less:    10,
	Greater: 10,
	Plus:    20,
	Minus:   20,
	Star:    40,
	Slash:   40,
}

// Precedence returns the binary operator precedence of k, or -1 if k is not
// a binary operator.
//
//	 2: =
//	10: < >
//	20: + -
//	40: * /
func (k Kind) Precedence() int {
	if k < kindCount {
		if prec := binopPrecedence[k]; prec > 0 {
			return prec
		}
	}
	return -1
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= Def && k <= Var
}

// IsOperator reports whether k is a binary operator.
func (k Kind) IsOperator() bool {
	return k.Precedence() > 0
}

// keywords maps keyword spellings to their kind.
var keywords = map[string]Kind{
	"def":    Def,
	"extern": Extern,
	"if":     If,
	"then":   Then,
	"else":   Else,
	"for":    For,
	"in":     In,
	"var":    Var,
}

// LookupKeyword returns the keyword kind for ident, or Identifier.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// Token is a single lexical token. Tokens are produced by a Lexer and never
// modified afterwards.
type Token struct {
	Kind Kind
	Text string // source text; meaningful for Number and Identifier
	Pos  Pos    // start position, zero if the lexer does not track positions
}

// String describes the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return "number " + t.Text
	case Identifier:
		return "identifier " + strconv.Quote(t.Text)
	case Illegal:
		return "illegal character " + strconv.Quote(t.Text)
	}
	return t.Kind.Quote()
}
