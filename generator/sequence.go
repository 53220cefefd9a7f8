package generator

import "github.com/t14raptor/estree-gen/ast"

// writeSequence emits a parenthesized, comma-separated list of child
// expressions (spec §4.6): "(x, y, z)", no spaces after "(" or before
// ")", ", " between elements, "()" for an empty list.
func writeSequence(s *state, items []ast.Expr) {
	s.write("(")
	for i, it := range items {
		if i > 0 {
			s.write(", ")
		}
		if it == nil {
			continue // elision inside an argument/parameter list
		}
		gen(s, it)
	}
	s.write(")")
}
