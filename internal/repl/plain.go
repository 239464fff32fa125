package repl

import (
	"bufio"
	"fmt"
	"io"
)

// Prompts are the strings shown before each input line.
type Prompts struct {
	Primary      string // "ready> "
	Continuation string // shown while a construct is incomplete
}

// DefaultPrompts returns the classic prompts.
func DefaultPrompts() Prompts {
	return Prompts{Primary: "ready> ", Continuation: "...> "}
}

func (p Prompts) current(s *Session) string {
	if s.Pending() {
		return p.Continuation
	}
	return p.Primary
}

// RunPlain drives s from r, one line at a time, writing prompts, results
// and errors to w. Syntax errors are reported and the loop continues; it
// stops at end of input or when r fails.
func RunPlain(r io.Reader, w io.Writer, s *Session, prompts Prompts) error {
	in := bufio.NewScanner(r)

	fmt.Fprint(w, prompts.current(s))
	for in.Scan() {
		results, err := s.Submit(in.Text())
		for _, res := range results {
			fmt.Fprintln(w, res)
		}
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		fmt.Fprint(w, prompts.current(s))
	}
	fmt.Fprintln(w)

	if err := s.Finish(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return in.Err()
}
