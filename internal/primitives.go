package internal

import (
	"fmt"
)

type unaryPrimitive func(in *interpreter, operand int) int

type binaryPrimitive func(left, right int) (int, error)

var unaryPrimitives = map[string]unaryPrimitive{
	"!": func(in *interpreter, operand int) int {
		return boolToInt(operand == 0)
	},
	"printi": func(in *interpreter, operand int) int {
		fmt.Fprintf(in.out, "%d%s", operand, in.separator)
		return operand
	},
	"printc":  printChar,
	"printch": printChar,
}

// printChar writes the low byte of operand as is
func printChar(in *interpreter, operand int) int {
	in.out.Write([]byte{byte(operand)})
	return operand
}

var binaryPrimitives = map[string]binaryPrimitive{
	"+": func(left, right int) (int, error) {
		return left + right, nil
	},
	"-": func(left, right int) (int, error) {
		return left - right, nil
	},
	"*": func(left, right int) (int, error) {
		return left * right, nil
	},
	"/": func(left, right int) (int, error) {
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	},
	"%": func(left, right int) (int, error) {
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left % right, nil
	},
	"==": func(left, right int) (int, error) {
		return boolToInt(left == right), nil
	},
	"!=": func(left, right int) (int, error) {
		return boolToInt(left != right), nil
	},
	"<": func(left, right int) (int, error) {
		return boolToInt(left < right), nil
	},
	"<=": func(left, right int) (int, error) {
		return boolToInt(left <= right), nil
	},
	">": func(left, right int) (int, error) {
		return boolToInt(left > right), nil
	},
	">=": func(left, right int) (int, error) {
		return boolToInt(left >= right), nil
	},
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
