package internal

// exec runs s and returns the resulting store. Declarations only extend the
// environment of the block that holds them.
func (in *interpreter) exec(s stmt, e *env, st *Store) *Store {
	switch s := s.(type) {
	case *exprStmt:
		_, st = in.eval(s.expression, e, st)
		return st

	case *declStmt:
		_, st = in.allocate(s.decl, e, st)
		return st

	case *ifStmt:
		cond, st := in.eval(s.condition, e, st)
		if cond != 0 {
			return in.exec(s.thenBranch, e, st)
		}
		if s.elseBranch != nil {
			return in.exec(s.elseBranch, e, st)
		}
		return st

	case *whileStmt:
		for {
			var cond int
			cond, st = in.eval(s.condition, e, st)
			if cond == 0 {
				return st
			}
			st = in.exec(s.body, e, st)
		}

	case *blockStmt:
		return in.executeBlock(s.entries, e, st)

	case *returnStmt:
		runtimeErr(ErrReturnNotImplemented, s.keyword)
	}
	panic("unexpected statement")
}

func (in *interpreter) executeBlock(entries []stmt, e *env, st *Store) *Store {
	for _, entry := range entries {
		if decl, isDecl := entry.(*declStmt); isDecl {
			e, st = in.allocate(decl.decl, e, st)
			continue
		}
		st = in.exec(entry, e, st)
	}
	return st
}
