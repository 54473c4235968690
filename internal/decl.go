package internal

import "strconv"

// typeSpec is a declared type. The evaluator only looks at the array length;
// everything else is kept for the tree printer.
type typeSpec struct {
	base     *token
	pointers int
	// length is the fixed array length, or -1 when the type is not an array.
	// Array parameters ("int a[]") have length -1 and are plain pointers.
	length int
}

func (t *typeSpec) isArray() bool {
	return t.length >= 0
}

func (t *typeSpec) String() string {
	out := t.base.lexeme
	for i := 0; i < t.pointers; i++ {
		out += "*"
	}
	if t.isArray() {
		out += "[" + strconv.Itoa(t.length) + "]"
	}
	return out
}

type varDecl struct {
	typ  *typeSpec
	name *token
}

type fnDecl struct {
	result *typeSpec
	name   *token
	params []*varDecl
	body   stmt
}

// topDecl is either a *varDecl (global variable) or a *fnDecl.
type topDecl interface {
	topDeclNode()
}

func (*varDecl) topDeclNode() {}
func (*fnDecl) topDeclNode()  {}

// Program is a parsed translation unit: its top-level declarations in source order.
type Program struct {
	decls []topDecl
}

func (p *Program) globals() []*varDecl {
	var out []*varDecl
	for _, d := range p.decls {
		if v, ok := d.(*varDecl); ok {
			out = append(out, v)
		}
	}
	return out
}

func (p *Program) functions() []*fnDecl {
	var out []*fnDecl
	for _, d := range p.decls {
		if f, ok := d.(*fnDecl); ok {
			out = append(out, f)
		}
	}
	return out
}
