package internal

// resolve computes the address an access expression denotes. Indexing is
// never bounds checked: an index past the end of an array or list yields the
// address of whatever lies there.
func (in *interpreter) resolve(a access, e *env, st *Store) (int, *Store) {
	switch a := a.(type) {
	case *variableExpr:
		return e.lookup(a.name), st

	case *derefExpr:
		return in.eval(a.operand, e, st)

	case *indexExpr:
		base, st := in.eval(a.object, e, st)
		offset, st := in.eval(a.index, e, st)
		return base + offset, st

	case *doubleIndexExpr:
		base, st := in.eval(a.object, e, st)
		row, st := in.eval(a.row, e, st)
		col, st := in.eval(a.col, e, st)
		return in.walkRows(base, row, col, st, a.brace), st
	}
	panic("unexpected access expression")
}

// walkRows follows row links from the first cell of a list, then col links
// inside the nested list found there. A boxed scalar in the row position is a
// leaf and col is not used.
func (in *interpreter) walkRows(first, row, col int, st *Store, tk *token) int {
	cell := in.follow(first, row, st, tk)
	if in.read(st, cell+cellHeader, tk) < 0 {
		return cell + cellPayload
	}
	nested := in.read(st, cell+cellPayload, tk)
	return in.follow(nested, col, st, tk) + cellPayload
}

func (in *interpreter) follow(cell, links int, st *Store, tk *token) int {
	for i := 0; i < links; i++ {
		cell = in.read(st, cell+cellNext, tk)
	}
	return cell
}
