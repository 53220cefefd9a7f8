package generator

import (
	"github.com/t14raptor/estree-gen/ast"
)

// declFormatters holds every declaration-kind Formatter (spec §4.4),
// including the module import/export forms.
var declFormatters = dispatchTable{
	"VariableDeclaration":      genVariableDeclaration,
	"VariableDeclarator":       genVariableDeclarator,
	"FunctionDeclaration":      genFunction,
	"FunctionExpression":       genFunction,
	"ClassDeclaration":         genClass,
	"ClassExpression":          genClass,
	"MethodDefinition":         genMethodDefinition,
	"FieldDefinition":          genFieldDefinition,
	"ImportDeclaration":        genImportDeclaration,
	"ExportNamedDeclaration":   genExportNamedDeclaration,
	"ExportDefaultDeclaration": genExportDefaultDeclaration,
	"ExportAllDeclaration":     genExportAllDeclaration,
}

// genVariableDeclaration appends the teacher's single inline trailing
// line-comment idiom (grounded on its ExpressionStatement/
// LexicalDeclaration Comment field), generalized to the first trailing
// comment recorded on this node when that comment is a line comment.
func genVariableDeclaration(s *state, n ast.Node) {
	v := n.(*ast.VariableDeclaration)
	s.write(string(v.Kind))
	s.write(" ")
	for i, d := range v.Declarations {
		if i > 0 {
			s.write(", ")
		}
		gen(s, d)
	}
	if !s.noTrailingSemicolon {
		s.write(";")
	}
	writeInlineTrailingComment(s, v.TrailingComments())
}

func genVariableDeclarator(s *state, n ast.Node) {
	d := n.(*ast.VariableDeclarator)
	gen(s, d.Id)
	if d.Init != nil {
		s.write(" = ")
		gen(s, d.Init)
	}
}

// genFunction is shared by FunctionDeclaration and FunctionExpression
// (spec §4.1/§4.4): they carry the identical Id/Params/Body/Async/
// Generator shape.
func genFunction(s *state, n ast.Node) {
	var id *ast.Identifier
	var params []ast.Expr
	var body *ast.BlockStatement
	var async, generator bool
	switch f := n.(type) {
	case *ast.FunctionDeclaration:
		id, params, body, async, generator = f.Id, f.Params, f.Body, f.Async, f.Generator
	case *ast.FunctionExpression:
		id, params, body, async, generator = f.Id, f.Params, f.Body, f.Async, f.Generator
	}
	if async {
		s.write("async ")
	}
	s.write("function")
	if generator {
		s.write("*")
	}
	if id != nil {
		s.write(" ")
		gen(s, id)
	} else {
		s.write(" ")
	}
	writeSequence(s, params)
	s.write(" ")
	gen(s, body)
}

// genClass is shared by ClassDeclaration and ClassExpression (spec
// §4.1/§4.4): "class", an optional name, an optional "extends" clause,
// then the body.
func genClass(s *state, n ast.Node) {
	var id *ast.Identifier
	var super ast.Expr
	var body *ast.ClassBody
	switch c := n.(type) {
	case *ast.ClassDeclaration:
		id, super, body = c.Id, c.SuperClass, c.Body
	case *ast.ClassExpression:
		id, super, body = c.Id, c.SuperClass, c.Body
	}
	s.write("class")
	if id != nil {
		s.write(" ")
		gen(s, id)
	}
	s.write(" ")
	if super != nil {
		s.write("extends ")
		gen(s, super)
		s.write(" ")
	}
	gen(s, body)
}

func genMethodDefinition(s *state, n ast.Node) {
	m := n.(*ast.MethodDefinition)
	if m.Static {
		s.write("static ")
	}
	switch m.Kind {
	case ast.PropertyGet:
		s.write("get ")
	case ast.PropertySet:
		s.write("set ")
	default:
		if m.Value.Async {
			s.write("async ")
		}
		if m.Value.Generator {
			s.write("*")
		}
	}
	writeMemberKey(s, m.Key, m.Computed)
	writeSequence(s, m.Value.Params)
	s.write(" ")
	gen(s, m.Value.Body)
}

func genFieldDefinition(s *state, n ast.Node) {
	f := n.(*ast.FieldDefinition)
	if f.Static {
		s.write("static ")
	}
	writeMemberKey(s, f.Key, f.Computed)
	if f.Value != nil {
		s.write(" = ")
		gen(s, f.Value)
	}
	s.write(";")
}

// genImportDeclaration groups the default/namespace specifiers (at most
// one of each) ahead of the named braces, matching the only order
// JavaScript's grammar allows.
func genImportDeclaration(s *state, n ast.Node) {
	im := n.(*ast.ImportDeclaration)
	s.write("import ")
	if len(im.Specifiers) == 0 {
		gen(s, im.Source)
		s.write(";")
		return
	}

	first := true
	writeSeparator := func() {
		if !first {
			s.write(", ")
		}
		first = false
	}

	var named []*ast.ImportSpecifierNamed
	for _, spec := range im.Specifiers {
		switch sp := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			writeSeparator()
			gen(s, sp.Local)
		case *ast.ImportNamespaceSpecifier:
			writeSeparator()
			s.write("* as ")
			gen(s, sp.Local)
		case *ast.ImportSpecifierNamed:
			named = append(named, sp)
		}
	}
	if len(named) > 0 {
		writeSeparator()
		s.write("{ ")
		for i, sp := range named {
			if i > 0 {
				s.write(", ")
			}
			gen(s, sp.Imported)
			if sp.Local.Name != sp.Imported.Name {
				s.write(" as ")
				gen(s, sp.Local)
			}
		}
		s.write(" }")
	}
	s.write(" from ")
	gen(s, im.Source)
	s.write(";")
}

func genExportNamedDeclaration(s *state, n ast.Node) {
	e := n.(*ast.ExportNamedDeclaration)
	if e.Declaration != nil {
		s.write("export ")
		gen(s, e.Declaration)
		return
	}
	if len(e.Specifiers) == 0 {
		s.write("export {};")
		return
	}
	s.write("export { ")
	for i, sp := range e.Specifiers {
		if i > 0 {
			s.write(", ")
		}
		gen(s, sp.Local)
		if sp.Exported.Name != sp.Local.Name {
			s.write(" as ")
			gen(s, sp.Exported)
		}
	}
	s.write(" }")
	if e.Source != nil {
		s.write(" from ")
		gen(s, e.Source)
	}
	s.write(";")
}

// genExportDefaultDeclaration appends ";" unless the declaration is a
// FunctionDeclaration, ClassDeclaration or FunctionExpression; every
// other kind gets one, including brace-ending expressions such as an
// ObjectExpression or ClassExpression.
func genExportDefaultDeclaration(s *state, n ast.Node) {
	e := n.(*ast.ExportDefaultDeclaration)
	s.write("export default ")
	gen(s, e.Declaration)
	switch e.Declaration.(type) {
	case *ast.FunctionDeclaration, *ast.ClassDeclaration, *ast.FunctionExpression:
	default:
		s.write(";")
	}
}

func genExportAllDeclaration(s *state, n ast.Node) {
	e := n.(*ast.ExportAllDeclaration)
	s.write("export *")
	if e.Exported != nil {
		s.write(" as ")
		gen(s, e.Exported)
	}
	s.write(" from ")
	gen(s, e.Source)
	s.write(";")
}
