package generator

import (
	"strings"

	"github.com/t14raptor/estree-gen/ast"
)

// writeCommentList emits each comment in order at the current indent
// level (spec §4.7). Leading and trailing comment lists both go through
// this helper; it is a no-op when Options.Comments is false.
func writeCommentList(s *state, comments []ast.Comment) {
	if !s.writeComments || len(comments) == 0 {
		return
	}
	indent := strings.Repeat(s.indent, s.indentLevel)
	for _, c := range comments {
		writeComment(s, c, indent)
	}
}

func writeComment(s *state, c ast.Comment, indent string) {
	if c.Type == ast.LineComment {
		s.write(indent)
		s.write("// ")
		s.write(strings.TrimSpace(c.Value))
		s.write("\n")
		return
	}
	s.write(indent)
	s.write("/*")
	s.write(reindentBlockComment(c.Value, indent))
	s.write("*/")
	s.write("\n")
}

// reindentBlockComment implements the re-indent algorithm of spec §4.7.
func reindentBlockComment(body, indent string) string {
	body = strings.TrimRight(body, " \t\r\n")

	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return indent + strings.TrimLeft(body, " \t\r\n")
	}

	rest := body[nl+1:]
	p := rest[:len(rest)-len(strings.TrimLeft(rest, " \t"))]

	trimmed := strings.TrimLeft(body, " \t\r\n")
	parts := strings.Split(trimmed, "\n"+p)
	return strings.Join(parts, "\n"+indent)
}
