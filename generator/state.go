package generator

import (
	"strings"

	"github.com/t14raptor/estree-gen/ast"
)

// Writer is the output sink contract of spec §6.2: a single synchronous
// method that accepts a string and commits it in order. *strings.Builder
// already satisfies it.
type Writer interface {
	WriteString(s string) (int, error)
}

// SourceMapSink is the optional destination for generated-position
// tuples (spec §6.2, §D.2 of SPEC_FULL.md). Add is called once per
// dispatched node that carries a location, with the generated position
// at which that node's text begins.
type SourceMapSink interface {
	Add(sourceFile string, original ast.Position, generatedLine, generatedColumn int)
}

// state is the mutable emission state threaded through the traversal
// (spec §3.3). It is never copied; formatters receive a pointer and
// mutate indent/noTrailingSemicolon through scoped helpers that restore
// the previous value on every exit path, per the spec's Design Notes on
// lexically scoped effects.
type state struct {
	out     Writer
	indent  string
	lineEnd string

	indentLevel int

	// noTrailingSemicolon suppresses the ";" a VariableDeclaration would
	// otherwise emit; set while rendering a for-loop initializer.
	noTrailingSemicolon bool

	writeComments bool

	sourceMap  SourceMapSink
	sourceFile string

	line, column int

	table dispatchTable
}

// write commits text to the output sink and, when a source-map sink is
// configured, advances the tracked generated position by inspecting the
// written text (spec §6.2: line increments on newline, column otherwise
// advances by the string length).
func (s *state) write(text string) {
	if _, err := s.out.WriteString(text); err != nil {
		fail(sinkError(err))
	}
	if s.sourceMap == nil || text == "" {
		return
	}
	if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
		s.line += strings.Count(text, "\n")
		s.column = len(text) - nl - 1
	} else {
		s.column += len(text)
	}
}

// mark reports the current generated position against a node's original
// location, when both are available.
func (s *state) mark(n ast.Node) {
	if s.sourceMap == nil {
		return
	}
	loc := n.Location()
	if loc == nil {
		return
	}
	s.sourceMap.Add(s.sourceFile, loc.Start, s.line, s.column)
}

// writeIndent writes indentLevel copies of the indent unit, with no
// preceding newline.
func (s *state) writeIndent() {
	s.write(strings.Repeat(s.indent, s.indentLevel))
}

// pad writes a newline followed by indentLevel copies of the indent
// unit.
func (s *state) pad() {
	s.write(s.lineEnd)
	s.writeIndent()
}

// enterBlock increments indentLevel and returns a function that restores
// it; deferring the returned function preserves invariant (i) of §3.3
// across early returns and panics alike.
func (s *state) enterBlock() func() {
	s.indentLevel++
	return func() { s.indentLevel-- }
}

// suppressSemicolon sets noTrailingSemicolon and returns a restorer,
// used by for-loop initializer emission (spec §4.3).
func (s *state) suppressSemicolon() func() {
	prev := s.noTrailingSemicolon
	s.noTrailingSemicolon = true
	return func() { s.noTrailingSemicolon = prev }
}
