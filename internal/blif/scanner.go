package blif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/blifnet/internal/netlist"
)

// Error is a fatal parse or validation failure. Every malformation aborts
// the whole parse; there are no warnings and no partial designs.
type Error struct {
	Pos netlist.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.File == "" {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

func errorAt(pos netlist.Position, format string, args ...interface{}) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// scanner reads one logical line at a time and splits it into
// whitespace-separated words. A logical line is a physical line with any
// trailing # comment removed, joined with the following physical line when
// it ends in a backslash.
type scanner struct {
	file  string
	sc    *bufio.Scanner
	phys  int // physical lines consumed
	line  int // first physical line of the current logical line
	words []string
}

func newScanner(file string, r io.Reader) *scanner {
	return &scanner{file: file, sc: bufio.NewScanner(r)}
}

func (s *scanner) pos() netlist.Position {
	return netlist.Position{File: s.file, Line: s.line}
}

func (s *scanner) errorf(format string, args ...interface{}) error {
	return errorAt(s.pos(), format, args...)
}

// next advances to the next non-blank logical line. It returns false at end
// of input.
func (s *scanner) next() (bool, error) {
	for {
		text, start, ok, err := s.readLogical()
		if err != nil || !ok {
			return ok, err
		}
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		s.line = start
		s.words = words
		return true, nil
	}
}

func (s *scanner) readLogical() (string, int, bool, error) {
	var b strings.Builder
	start := 0
	for {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return "", 0, false, errors.Wrapf(err, "read %s", s.file)
			}
			if start == 0 {
				return "", 0, false, nil
			}
			return b.String(), start, true, nil
		}
		s.phys++
		if start == 0 {
			start = s.phys
		}
		line := s.sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.HasSuffix(line, "\\") {
			b.WriteString(line[:len(line)-1])
			b.WriteByte(' ')
			continue
		}
		b.WriteString(line)
		return b.String(), start, true, nil
	}
}
