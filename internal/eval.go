package internal

// eval computes the value of x. Operands are evaluated left to right and each
// one sees the store produced by the operands before it.
func (in *interpreter) eval(x expr, e *env, st *Store) (int, *Store) {
	switch x := x.(type) {
	case *literalExpr:
		return x.value, st

	case *variableExpr, *derefExpr, *indexExpr, *doubleIndexExpr:
		tk := accessToken(x.(access))
		addr, st := in.resolve(x.(access), e, st)
		return in.read(st, addr, tk), st

	case *addressOfExpr:
		return in.resolve(x.target, e, st)

	case *assignExpr:
		addr, st := in.resolve(x.target, e, st)
		value, st := in.eval(x.value, e, st)
		return value, in.write(st, addr, value, x.equal)

	case *unaryExpr:
		apply, ok := unaryPrimitives[x.operator.lexeme]
		if !ok {
			runtimeErr(ErrUnknownPrimitive, x.operator)
		}
		operand, st := in.eval(x.operand, e, st)
		return apply(in, operand), st

	case *binaryExpr:
		apply, ok := binaryPrimitives[x.operator.lexeme]
		if !ok {
			runtimeErr(ErrUnknownPrimitive, x.operator)
		}
		left, st := in.eval(x.left, e, st)
		right, st := in.eval(x.right, e, st)
		value, err := apply(left, right)
		if err != nil {
			runtimeErr(err, x.operator)
		}
		return value, st

	case *logicalExpr:
		return in.logical(x, e, st)

	case *callExpr:
		return in.call(x, e, st)

	case *listExpr:
		return in.buildList(x, e, st)
	}
	panic("unexpected expression")
}

func (in *interpreter) logical(x *logicalExpr, e *env, st *Store) (int, *Store) {
	left, st := in.eval(x.left, e, st)

	switch x.operator.token {
	case tkAnd:
		if left == 0 {
			return 0, st
		}
	case tkOr:
		if left != 0 {
			return 1, st
		}
	default:
		runtimeErr(ErrUnknownPrimitive, x.operator)
	}

	right, st := in.eval(x.right, e, st)
	return boolToInt(right != 0), st
}

func accessToken(a access) *token {
	switch a := a.(type) {
	case *variableExpr:
		return a.name
	case *derefExpr:
		return a.star
	case *indexExpr:
		return a.brace
	case *doubleIndexExpr:
		return a.brace
	}
	return nil
}
