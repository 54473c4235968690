package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), [, ], {, }, ',', ;, &, *, +, -, /, %, !, =, <, >
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkSemicolon
	tkAmpersand
	tkStar
	tkPlus
	tkMinus
	tkSlash
	tkMod
	tkBang
	tkEqual
	tkLess
	tkGreater

	// Two character tokens.
	// ==, !=, <=, >=, &&, ||
	tkEqualEqual
	tkBangEqual
	tkLessEqual
	tkGreaterEqual
	tkAnd
	tkOr

	// Literals.
	// *variable*, 'c', 123
	tkIdentifier
	tkChar
	tkNumber

	// Keywords.
	// int, char, void, if, else, while, return
	tkInt
	tkCharType
	tkVoid
	tkIf
	tkElse
	tkWhile
	tkReturn
)

var tokenNames = map[tokenType]string{
	tkEOF:             "EOF",
	tkLeftParen:       "(",
	tkRightParen:      ")",
	tkLeftBrace:       "[",
	tkRightBrace:      "]",
	tkLeftCurlyBrace:  "{",
	tkRightCurlyBrace: "}",
	tkComma:           ",",
	tkSemicolon:       ";",
	tkAmpersand:       "&",
	tkStar:            "*",
	tkPlus:            "+",
	tkMinus:           "-",
	tkSlash:           "/",
	tkMod:             "%",
	tkBang:            "!",
	tkEqual:           "=",
	tkLess:            "<",
	tkGreater:         ">",
	tkEqualEqual:      "==",
	tkBangEqual:       "!=",
	tkLessEqual:       "<=",
	tkGreaterEqual:    ">=",
	tkAnd:             "&&",
	tkOr:              "||",
	tkIdentifier:      "IDENTIFIER",
	tkChar:            "CHAR",
	tkNumber:          "NUMBER",
	tkInt:             "int",
	tkCharType:        "char",
	tkVoid:            "void",
	tkIf:              "if",
	tkElse:            "else",
	tkWhile:           "while",
	tkReturn:          "return",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal int
	line    int
}

func (t *token) String() string {
	switch t.token {
	case tkNumber, tkChar:
		return fmt.Sprintf("%d %s %s %d", t.line, t.token, t.lexeme, t.literal)
	}
	return fmt.Sprintf("%d %s %s", t.line, t.token, t.lexeme)
}
