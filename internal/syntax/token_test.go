package syntax

import (
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if got := Kind(999).String(); !strings.HasPrefix(got, "kind(") {
		t.Errorf("unknown kind string = %q, want prefix 'kind('", got)
	}
}

func TestKindPrecedence(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Equal, 2},
		{Less, 10},
		{Greater, 10},
		{Plus, 20},
		{Minus, 20},
		{Star, 40},
		{Slash, 40},

		// Everything else is not a binary operator.
		{EndOfInput, -1},
		{Illegal, -1},
		{Number, -1},
		{Identifier, -1},
		{LParen, -1},
		{RParen, -1},
		{Comma, -1},
		{Semicolon, -1},
		{Then, -1},
		{In, -1},
		{Kind(999), -1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Precedence(); got != tt.want {
				t.Errorf("%v.Precedence() = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range []Kind{Def, Extern, If, Then, Else, For, In, Var} {
		if !k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false, want true", k)
		}
		if k.IsOperator() {
			t.Errorf("%v.IsOperator() = true, want false", k)
		}
	}
	for _, k := range []Kind{Equal, Less, Greater, Plus, Minus, Star, Slash} {
		if !k.IsOperator() {
			t.Errorf("%v.IsOperator() = false, want true", k)
		}
		if k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = true, want false", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"def", Def},
		{"extern", Extern},
		{"if", If},
		{"then", Then},
		{"else", Else},
		{"for", For},
		{"in", In},
		{"var", Var},
		{"foo", Identifier},
		{"Def", Identifier},
		{"iff", Identifier},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Number, Text: "1.5"}, "number 1.5"},
		{Token{Kind: Identifier, Text: "x"}, `identifier "x"`},
		{Token{Kind: Illegal, Text: "@"}, `illegal character "@"`},
		{Token{Kind: EndOfInput}, "end of input"},
		{Token{Kind: Else, Text: "else"}, "'else'"},
		{Token{Kind: LParen, Text: "("}, "'('"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}
