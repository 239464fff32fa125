package syntax

import "strconv"

// Pos is a 1-based line:column location in a named source. Columns count
// runes. The zero Pos is invalid and prints as "-".
type Pos struct {
	filename  string
	line, col int
}

// NewPos returns the position line:col in filename.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename, line, col}
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	s := strconv.Itoa(p.line) + ":" + strconv.Itoa(p.col)
	if p.filename == "" {
		return s
	}
	return p.filename + ":" + s
}

// IsValid reports whether p carries a line number.
func (p Pos) IsValid() bool { return p.line > 0 }

func (p Pos) Filename() string { return p.filename }
func (p Pos) Line() int        { return p.line }
func (p Pos) Col() int         { return p.col }
