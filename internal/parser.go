package internal

import "runtime"

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

const maxFunctionParams = 255

func (p *parser) parse() {
	for !p.isAtEnd() {
		d := p.parseDecl()
		if d != nil {
			p.state.program.decls = append(p.state.program.decls, d)
		}
	}
}

func (p *parser) parseDecl() (d topDecl) {
	defer func() {
		if r := recover(); r != nil {
			if !recoverable(r) {
				panic(r)
			}
			p.synchronize()
			d = nil
		}
	}()
	return p.topLevel()
}

// recoverable reports whether a panic value is a parse error raised by
// fatalError. Go runtime errors are bugs and keep unwinding.
func recoverable(r interface{}) bool {
	if _, isRuntime := r.(runtime.Error); isRuntime {
		return false
	}
	_, isErr := r.(error)
	return isErr
}

func (p *parser) topLevel() topDecl {
	typ := p.typeSpec()
	name := p.consume(tkIdentifier, errExpectedIdentifier)
	if p.match(tkLeftParen) {
		return p.fn(typ, name)
	}
	decl := p.varDecl(typ, name, false)
	p.consume(tkSemicolon, errExpectedSemicolon)
	return decl
}

func (p *parser) typeSpec() *typeSpec {
	if !p.match(tkInt, tkCharType, tkVoid) {
		p.state.fatalError(errExpectedType, p.peek().line)
	}
	typ := &typeSpec{
		base:   p.previous(),
		length: -1,
	}
	for p.match(tkStar) {
		typ.pointers++
	}
	return typ
}

func (p *parser) varDecl(typ *typeSpec, name *token, param bool) *varDecl {
	if p.match(tkLeftBrace) {
		if param && p.match(tkRightBrace) {
			typ.pointers++
		} else {
			length := p.consume(tkNumber, errExpectedArrayLength)
			p.consume(tkRightBrace, errUnclosedBracket)
			typ.length = length.literal
		}
	}
	return &varDecl{
		typ:  typ,
		name: name,
	}
}

func (p *parser) fn(result *typeSpec, name *token) *fnDecl {
	var params []*varDecl
	if p.check(tkVoid) && p.checkNext(tkRightParen) {
		p.advance()
	} else if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.fatalError(errMaxParameters, p.peek().line)
			}
			typ := p.typeSpec()
			paramName := p.consume(tkIdentifier, errExpectedIdentifier)
			params = append(params, p.varDecl(typ, paramName, true))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParen)

	brace := p.consume(tkLeftCurlyBrace, errExpectedOpeningCurlyBrace)

	return &fnDecl{
		result: result,
		name:   name,
		params: params,
		body:   &blockStmt{brace: brace, entries: p.block()},
	}
}

// declaration parses one block entry
func (p *parser) declaration() stmt {
	if p.check(tkInt) || p.check(tkCharType) || p.check(tkVoid) {
		typ := p.typeSpec()
		name := p.consume(tkIdentifier, errExpectedIdentifier)
		decl := p.varDecl(typ, name, false)
		p.consume(tkSemicolon, errExpectedSemicolon)
		return &declStmt{decl: decl}
	}
	return p.statement()
}

func (p *parser) statement() stmt {
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkLeftCurlyBrace) {
		brace := p.previous()
		return &blockStmt{brace: brace, entries: p.block()}
	}
	if p.match(tkSemicolon) {
		return &blockStmt{brace: p.previous()}
	}
	return p.expressionStmt()
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}
	p.consume(tkLeftParen, errExpectedParen)
	st.condition = p.expression()
	p.consume(tkRightParen, errUnclosedParen)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	return st
}

func (p *parser) while() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParen)
	cond := p.expression()
	p.consume(tkRightParen, errUnclosedParen)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) ret() stmt {
	var value expr
	keyword := p.previous()
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) block() []stmt {
	var entries []stmt
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		if entry := p.blockEntry(); entry != nil {
			entries = append(entries, entry)
		}
	}
	p.consume(tkRightCurlyBrace, errExpectedClosingCurlyBrace)
	return entries
}

// blockEntry parses one entry of a block, skipping to the next one on error
func (p *parser) blockEntry() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if !recoverable(r) {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if target, ok := expr.(access); ok {
			return &assignExpr{
				target: target,
				equal:  equal,
				value:  value,
			}
		}

		p.state.setError(errInvalidAssignTarget, equal.line)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkMod, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang) {
		operator := p.previous()
		return &unaryExpr{
			operator: operator,
			operand:  p.unary(),
		}
	}
	if p.match(tkMinus) {
		// -e is 0 - e
		operator := p.previous()
		return &binaryExpr{
			left:     &literalExpr{tk: operator, value: 0},
			operator: operator,
			right:    p.unary(),
		}
	}
	if p.match(tkStar) {
		star := p.previous()
		return &derefExpr{
			star:    star,
			operand: p.unary(),
		}
	}
	if p.match(tkAmpersand) {
		ampersand := p.previous()
		operand := p.unary()
		target, ok := operand.(access)
		if !ok {
			p.state.setError(errInvalidAddressOf, ampersand.line)
			return operand
		}
		return &addressOfExpr{
			ampersand: ampersand,
			target:    target,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for p.match(tkLeftBrace) {
		brace := p.previous()
		index := p.expression()
		p.consume(tkRightBrace, errUnclosedBracket)
		if !p.match(tkLeftBrace) {
			expr = &indexExpr{
				object: expr,
				brace:  brace,
				index:  index,
			}
			continue
		}
		col := p.expression()
		p.consume(tkRightBrace, errUnclosedBracket)
		expr = &doubleIndexExpr{
			object: expr,
			brace:  brace,
			row:    index,
			col:    col,
		}
	}
	return expr
}

func (p *parser) finishCall(callee *token) expr {
	paren := p.previous()
	arguments := p.arguments(tkRightParen)
	p.consume(tkRightParen, errUnclosedParen)

	_, isPrimitive := unaryPrimitives[callee.lexeme]
	if isPrimitive && len(arguments) != 1 {
		p.state.setError(ErrArityMismatch, paren.line)
	} else if isPrimitive {
		return &unaryExpr{
			operator: callee,
			operand:  arguments[0],
		}
	}

	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) arguments(tk tokenType) []expr {
	arguments := make([]expr, 0)
	if !p.check(tk) {
		for {
			if tk == tkRightParen && len(arguments) >= maxFunctionParams {
				p.state.fatalError(errMaxArguments, p.peek().line)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	return arguments
}

func (p *parser) primary() expr {
	if p.match(tkNumber) {
		tk := p.previous()
		return &literalExpr{tk: tk, value: tk.literal}
	}
	if p.match(tkChar) {
		tk := p.previous()
		return &literalExpr{tk: tk, value: tk.literal, char: true}
	}
	if p.match(tkIdentifier) {
		name := p.previous()
		if p.match(tkLeftParen) {
			return p.finishCall(name)
		}
		return &variableExpr{name: name}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return expr
	}
	if p.match(tkLeftBrace) {
		brace := p.previous()
		elements := p.arguments(tkRightBrace)
		p.consume(tkRightBrace, errUnclosedList)
		return &listExpr{
			brace:    brace,
			elements: elements,
		}
	}

	p.state.fatalError(errUndefinedExpr, p.peek().line)
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek().line)
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) checkNext(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.state.tokens[p.current+1].token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().token {
		case tkInt, tkCharType, tkVoid:
			return
		}
		p.advance()
		switch p.previous().token {
		case tkSemicolon, tkRightCurlyBrace:
			return
		}
	}
}
