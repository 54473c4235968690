package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go && go run . Stmt > ../../internal/stmt.go && gofmt -w ../../internal/expr.go ../../internal/stmt.go"

// Node specs have the form "Name[+Marker]: field type, field type".
// A +Marker adds the node to the named sub-interface as well.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(1)
	}
	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", nil, []string{
			"Expr: expression expr",
			"Decl: decl *varDecl",
			"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
			"While: keyword *token, condition expr, body stmt",
			"Block: brace *token, entries []stmt",
			"Return: keyword *token, value expr",
		})
	case "Expr":
		out = generateAst("Expr", []string{"Access"}, []string{
			"Literal: tk *token, value int, char bool",
			"Variable+Access: name *token",
			"Deref+Access: star *token, operand expr",
			"Index+Access: object expr, brace *token, index expr",
			"DoubleIndex+Access: object expr, brace *token, row expr, col expr",
			"AddressOf: ampersand *token, target access",
			"Assign: target access, equal *token, value expr",
			"Unary: operator *token, operand expr",
			"Binary: left expr, operator *token, right expr",
			"Logical: left expr, operator *token, right expr",
			"Call: callee *token, paren *token, arguments []expr",
			"List: brace *token, elements []expr",
		})
	default:
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(1)
	}
	fmt.Print(out)
}

func generateAst(baseName string, markers []string, types []string) string {
	base := strings.ToLower(baseName)
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"

	for _, m := range markers {
		marker := strings.ToLower(m)
		out += "type " + marker + " interface {\n"
		out += "\t" + base + "\n"
		out += "\t" + marker + "Node()\n"
		out += "}\n\n"
	}

	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		names := strings.Split(strings.TrimSpace(typeDef[0]), "+")
		out += generateType(baseName, names[0], names[1:], strings.TrimSpace(typeDef[1]))
	}

	return strings.TrimRight(out, "\n") + "\n"
}

func generateType(baseName, name string, markers []string, fields string) string {
	base := strings.ToLower(baseName)
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName

	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (*" + structName + ") " + base + "Node() {}\n"
	for _, m := range markers {
		out += "func (*" + structName + ") " + strings.ToLower(m) + "Node() {}\n"
	}
	out += "\n"

	return out
}
