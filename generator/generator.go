// Package generator renders an ESTree-shaped AST (package ast) back into
// JavaScript source text. It never parses; it is the write-only half of
// a parse/print round trip, driven entirely by the node shapes in the
// ast package (spec §1, §2).
package generator

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/t14raptor/estree-gen/ast"
)

// Formatter renders one node kind. It is handed the emission state and
// the node itself; it recovers the concrete type with a type assertion
// or type switch and recurses into children through gen, never by
// calling another Formatter directly, so that an overlay table (Options.
// Generator) is honored at every recursion depth (spec §6.1).
type Formatter func(s *state, n ast.Node)

// dispatchTable maps an ESTree `type` tag to the Formatter that renders
// it.
type dispatchTable map[string]Formatter

// defaultTable is assembled once from the per-family tables defined in
// nodes_expr.go, nodes_stmt.go and nodes_decl.go.
var defaultTable = buildDefaultTable()

func buildDefaultTable() dispatchTable {
	t := make(dispatchTable, len(exprFormatters)+len(stmtFormatters)+len(declFormatters))
	for k, v := range exprFormatters {
		t[k] = v
	}
	for k, v := range stmtFormatters {
		t[k] = v
	}
	for k, v := range declFormatters {
		t[k] = v
	}
	return t
}

// Options configures a single Generate/Render call (spec §6.1). The
// zero value renders with a tab indent, "\n" line endings, comments
// suppressed, and no source-map tracking.
type Options struct {
	// Indent is the unit repeated StartingIndentLevel+depth times at
	// the start of an indented line. Defaults to "\t".
	Indent string
	// LineEnd terminates structural lines (not comment lines, which
	// always use "\n" per spec §4.7). Defaults to "\n".
	LineEnd string
	// StartingIndentLevel is the indent depth Program's body renders
	// at; nested blocks increase from here.
	StartingIndentLevel int
	// Comments enables emission of LeadingComments/TrailingComments;
	// when false the tree is rendered as if no node carried any.
	Comments bool
	// Output, if non-nil, receives the rendered text directly instead
	// of it being accumulated and returned.
	Output Writer
	// Generator overlays formatters onto the default table, keyed by
	// the same ESTree type tag Formatter receives (spec §6.1). A
	// supplied entry replaces the default for that kind only; every
	// other kind still renders through the built-in table, including
	// when the overlay formatter recurses into children.
	Generator map[string]Formatter
	// SourceMap, if non-nil, receives one Add call per node with a
	// known location as it is rendered (spec §6.2).
	SourceMap SourceMapSink
	// SourceFile is the name recorded against every source-map entry.
	SourceFile string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "\t"
	}
	if o.LineEnd == "" {
		o.LineEnd = "\n"
	}
	return o
}

func (o Options) table() dispatchTable {
	if len(o.Generator) == 0 {
		return defaultTable
	}
	merged := make(dispatchTable, len(defaultTable))
	for k, v := range defaultTable {
		merged[k] = v
	}
	for k, v := range o.Generator {
		merged[k] = v
	}
	return merged
}

// Generate renders node to a string with default options.
func Generate(node ast.Node) (string, error) {
	return Render(node, Options{})
}

// Render implements the render(node, options) operation of spec §6.1.
// When Options.Output is set the text is written there and Render
// returns "", nil on success; otherwise the rendered text is returned
// directly. A panic raised by fail() anywhere during traversal is
// recovered here and converted back into an error (spec §7): partial
// output already written to Options.Output is not rolled back.
func Render(node ast.Node, opts Options) (out string, err error) {
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			out, err = "", e
		}
	}()

	var sb *strings.Builder
	sink := opts.Output
	if sink == nil {
		sb = &strings.Builder{}
		sink = sb
	}

	s := &state{
		out:           sink,
		indent:        opts.Indent,
		lineEnd:       opts.LineEnd,
		indentLevel:   opts.StartingIndentLevel,
		writeComments: opts.Comments,
		sourceMap:     opts.SourceMap,
		sourceFile:    opts.SourceFile,
		table:         opts.table(),
	}

	gen(s, node)

	if sb != nil {
		return sb.String(), nil
	}
	return "", nil
}

// gen dispatches n to its Formatter through the active table. Every
// formatter in this package reaches its children exclusively via gen,
// never by calling another formatter function by name, so an overlay
// table in Options.Generator is observed at every depth.
func gen(s *state, n ast.Node) {
	if n == nil {
		return
	}
	f, ok := s.table[n.Type()]
	if !ok {
		fail(errors.WithStack(&UnknownKindError{Kind: n.Type()}))
	}
	s.mark(n)
	f(s, n)
}
