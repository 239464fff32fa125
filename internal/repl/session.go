// Package repl implements the interactive read-parse-print loop.
package repl

import (
	"errors"
	"sort"
	"strings"

	"github.com/you-not-fish/kaleido/internal/syntax"
)

// Result describes one top-level construct completed by a submission.
type Result struct {
	Decl    syntax.Decl
	Message string // "Parsed a function definition." and friends
}

// String returns the message followed by the construct's s-expression.
func (r Result) String() string {
	return r.Message + " " + r.Decl.String()
}

// Session accumulates input lines until they form complete top-level
// constructs, and remembers every definition and extern it has parsed.
type Session struct {
	maxDepth int

	pending strings.Builder

	defs    map[string]*syntax.Function
	externs map[string]*syntax.Prototype
	exprs   int // top-level expressions parsed so far
}

// NewSession returns an empty session. maxDepth limits expression nesting;
// 0 means unlimited.
func NewSession(maxDepth int) *Session {
	return &Session{
		maxDepth: maxDepth,
		defs:     make(map[string]*syntax.Function),
		externs:  make(map[string]*syntax.Prototype),
	}
}

// Submit adds line to the pending input and parses everything buffered so
// far. If the input ends inside a construct, Submit returns no results and
// no error and keeps the input buffered; Pending then reports true. On any
// other syntax error the buffer is discarded and the error returned.
func (s *Session) Submit(line string) ([]Result, error) {
	s.pending.WriteString(line)
	s.pending.WriteByte('\n')

	f, err := syntax.ParseString(s.pending.String(), syntax.MaxDepth(s.maxDepth))
	if err != nil {
		if syntax.IsIncomplete(err) {
			return nil, nil
		}
		s.pending.Reset()
		return nil, err
	}
	s.pending.Reset()

	results := make([]Result, 0, len(f.Decls))
	for _, d := range f.Decls {
		results = append(results, s.record(d))
	}
	return results, nil
}

// Pending reports whether a construct is waiting for more input.
func (s *Session) Pending() bool {
	return strings.TrimSpace(s.pending.String()) != ""
}

// Reset discards buffered input.
func (s *Session) Reset() {
	s.pending.Reset()
}

// Finish reports the error for any input still buffered, as if the input
// had ended there, and clears the buffer.
func (s *Session) Finish() error {
	if !s.Pending() {
		s.pending.Reset()
		return nil
	}
	_, err := syntax.ParseString(s.pending.String(), syntax.MaxDepth(s.maxDepth))
	s.pending.Reset()
	if err == nil {
		return errors.New("unterminated input")
	}
	return err
}

func (s *Session) record(d syntax.Decl) Result {
	switch d := d.(type) {
	case *syntax.Prototype:
		s.externs[d.Name] = d
		return Result{Decl: d, Message: "Parsed an extern."}
	case *syntax.Function:
		if d.IsAnon() {
			s.exprs++
			return Result{Decl: d, Message: "Parsed a top-level expr."}
		}
		s.defs[d.Proto.Name] = d
		return Result{Decl: d, Message: "Parsed a function definition."}
	}
	panic("repl: unexpected declaration")
}

// Lookup returns the prototype declared under name. A definition takes
// precedence over an extern of the same name.
func (s *Session) Lookup(name string) (*syntax.Prototype, bool) {
	if fn, ok := s.defs[name]; ok {
		return fn.Proto, true
	}
	proto, ok := s.externs[name]
	return proto, ok
}

// Definitions returns the names of all defined functions in sorted order.
func (s *Session) Definitions() []string {
	return sortedKeys(s.defs)
}

// Externs returns the names of all extern declarations in sorted order.
func (s *Session) Externs() []string {
	return sortedKeys(s.externs)
}

// Expressions returns how many top-level expressions have been parsed.
func (s *Session) Expressions() int {
	return s.exprs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
