package internal

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes program as s-expressions, one top-level declaration per line
func PrintTree(w io.Writer, program *Program) error {
	for _, d := range program.decls {
		if _, err := fmt.Fprintln(w, declString(d)); err != nil {
			return err
		}
	}
	return nil
}

func declString(d topDecl) string {
	switch d := d.(type) {
	case *varDecl:
		return fmt.Sprintf("(var %s %s)", d.typ, d.name.lexeme)
	case *fnDecl:
		params := make([]string, len(d.params))
		for i, p := range d.params {
			params[i] = fmt.Sprintf("(%s %s)", p.typ, p.name.lexeme)
		}
		return fmt.Sprintf("(fn %s %s (%s) %s)", d.result, d.name.lexeme, strings.Join(params, " "), stmtString(d.body))
	}
	return "?"
}

func stmtString(s stmt) string {
	switch s := s.(type) {
	case *exprStmt:
		return exprString(s.expression)
	case *declStmt:
		return declString(s.decl)
	case *ifStmt:
		if s.elseBranch == nil {
			return fmt.Sprintf("(if %s %s)", exprString(s.condition), stmtString(s.thenBranch))
		}
		return fmt.Sprintf("(if %s %s %s)", exprString(s.condition), stmtString(s.thenBranch), stmtString(s.elseBranch))
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", exprString(s.condition), stmtString(s.body))
	case *blockStmt:
		out := "(scope"
		for _, entry := range s.entries {
			out += " " + stmtString(entry)
		}
		return out + ")"
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", exprString(s.value))
	}
	return "?"
}

func exprString(x expr) string {
	switch x := x.(type) {
	case *literalExpr:
		if x.char {
			return fmt.Sprintf("%q", rune(x.value))
		}
		return fmt.Sprint(x.value)
	case *variableExpr:
		return x.name.lexeme
	case *derefExpr:
		return fmt.Sprintf("(* %s)", exprString(x.operand))
	case *indexExpr:
		return fmt.Sprintf("([] %s %s)", exprString(x.object), exprString(x.index))
	case *doubleIndexExpr:
		return fmt.Sprintf("([][] %s %s %s)", exprString(x.object), exprString(x.row), exprString(x.col))
	case *addressOfExpr:
		return fmt.Sprintf("(& %s)", exprString(x.target))
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", exprString(x.target), exprString(x.value))
	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", x.operator.lexeme, exprString(x.operand))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, exprString(x.left), exprString(x.right))
	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, exprString(x.left), exprString(x.right))
	case *callExpr:
		out := "(call " + x.callee.lexeme
		for _, arg := range x.arguments {
			out += " " + exprString(arg)
		}
		return out + ")"
	case *listExpr:
		elements := make([]string, len(x.elements))
		for i, el := range x.elements {
			elements[i] = exprString(el)
		}
		return strings.TrimSuffix("(list "+strings.Join(elements, " "), " ") + ")"
	}
	return "?"
}
