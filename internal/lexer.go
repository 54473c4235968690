package internal

import (
	"strconv"
)

type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"int":    tkInt,
	"char":   tkCharType,
	"void":   tkVoid,
	"if":     tkIf,
	"else":   tkElse,
	"while":  tkWhile,
	"return": tkReturn,
}

var charEscapes = map[byte]int{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.start = l.current
	l.emit(tkEOF, 0)
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '[':
		l.emit(tkLeftBrace, 0)
	case ']':
		l.emit(tkRightBrace, 0)
	case '{':
		l.emit(tkLeftCurlyBrace, 0)
	case '}':
		l.emit(tkRightCurlyBrace, 0)
	case '(':
		l.emit(tkLeftParen, 0)
	case ')':
		l.emit(tkRightParen, 0)
	case ',':
		l.emit(tkComma, 0)
	case ';':
		l.emit(tkSemicolon, 0)
	case '-':
		l.emit(tkMinus, 0)
	case '+':
		l.emit(tkPlus, 0)
	case '*':
		l.emit(tkStar, 0)
	case '%':
		l.emit(tkMod, 0)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(tkSlash, 0)
		}
	case '&':
		if l.match('&') {
			l.emit(tkAnd, 0)
		} else {
			l.emit(tkAmpersand, 0)
		}
	case '|':
		if l.match('|') {
			l.emit(tkOr, 0)
		} else {
			l.state.setError(errIllegalChar, l.line)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, 0)
		} else {
			l.emit(tkBang, 0)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, 0)
		} else {
			l.emit(tkEqual, 0)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, 0)
		} else {
			l.emit(tkLess, 0)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, 0)
		} else {
			l.emit(tkGreater, 0)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '\'':
		l.char()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errIllegalChar, l.line)
		}
	}
}

func (l *lexer) blockComment() {
	startLine := l.line
	for !l.isAtEnd() {
		c := l.advance()
		if c == '\n' {
			l.line++
		}
		if c == '*' && l.match('/') {
			return
		}
	}
	l.state.setError(errUnclosedComment, startLine)
}

func (l *lexer) char() {
	if l.isAtEnd() || l.peek() == '\n' {
		l.state.setError(errUnclosedChar, l.line)
		return
	}

	c := l.advance()
	literal := int(c)
	if c == '\\' && !l.isAtEnd() {
		esc, ok := charEscapes[l.advance()]
		if !ok {
			l.state.setError(errIllegalChar, l.line)
		}
		literal = esc
	}

	if !l.match('\'') {
		l.state.setError(errUnclosedChar, l.line)
		return
	}

	l.emit(tkChar, literal)
}

func (l *lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	literal, err := strconv.Atoi(l.state.source[l.start:l.current])
	if err != nil {
		l.state.setError(err, l.line)
	}

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, 0)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) peek() byte {
	return l.state.source[l.current]
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) emit(tk tokenType, literal int) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
