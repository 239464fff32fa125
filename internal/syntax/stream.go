package syntax

// SliceLexer replays a fixed token sequence. After the last token it returns
// EndOfInput forever, positioned at the last token if there was one.
type SliceLexer struct {
	toks []Token
	i    int
}

// NewSliceLexer returns a Lexer over toks. A trailing EndOfInput token is
// optional.
func NewSliceLexer(toks ...Token) *SliceLexer {
	return &SliceLexer{toks: toks}
}

// Next returns the next token of the sequence.
func (l *SliceLexer) Next() Token {
	if l.i < len(l.toks) {
		tok := l.toks[l.i]
		l.i++
		return tok
	}
	eof := Token{Kind: EndOfInput}
	if n := len(l.toks); n > 0 {
		eof.Pos = l.toks[n-1].Pos
	}
	return eof
}

// Tokenize drains lex up to and including the first EndOfInput token.
func Tokenize(lex Lexer) []Token {
	var toks []Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Kind == EndOfInput {
			return toks
		}
	}
}
