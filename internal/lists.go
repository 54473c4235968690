package internal

import (
	"github.com/sirupsen/logrus"
)

// List literals are built from cells laid out in the store:
//
//	boxed scalar (4 slots): tag, payload, next, pad
//	list node    (5 slots): length, head, next, tail, pad
//
// A negative header is a scalar tag, anything else is the length of a nested
// list whose first and last cells are head and tail. next links the cells of
// one list; endOfList terminates it.
const (
	cellHeader  = 0
	cellPayload = 1
	cellNext    = 2
	cellTail    = 3

	boxSize  = 4
	nodeSize = 5

	tagInt    = -1
	tagChar   = -2
	endOfList = -1
)

// buildList evaluates the elements of l left to right, allocating one cell
// per element after its value is known, and yields the address of the first
// cell, or endOfList for an empty list.
func (in *interpreter) buildList(l *listExpr, e *env, st *Store) (int, *Store) {
	head, _, st := in.buildCells(l, e, st)
	return head, st
}

func (in *interpreter) buildCells(l *listExpr, e *env, st *Store) (int, int, *Store) {
	head, tail := endOfList, endOfList
	for _, element := range l.elements {
		var cell int
		if nested, isList := element.(*listExpr); isList {
			cell, st = in.listNode(nested, e, st)
		} else {
			cell, st = in.box(element, e, st, l.brace)
		}

		if tail == endOfList {
			head = cell
		} else {
			st = in.write(st, tail+cellNext, cell, l.brace)
		}
		tail = cell
	}

	if in.trace {
		in.log.WithFields(logrus.Fields{
			"head":   head,
			"tail":   tail,
			"length": len(l.elements),
		}).Debug("list")
	}

	return head, tail, st
}

func (in *interpreter) box(element expr, e *env, st *Store, tk *token) (int, *Store) {
	value, st := in.eval(element, e, st)

	tag := tagInt
	if lit, isLit := element.(*literalExpr); isLit && lit.char {
		tag = tagChar
	}

	cell, st := in.allocBlock(boxSize, st, tk)
	st = in.write(st, cell+cellHeader, tag, tk)
	st = in.write(st, cell+cellPayload, value, tk)
	st = in.write(st, cell+cellNext, endOfList, tk)
	return cell, st
}

func (in *interpreter) listNode(nested *listExpr, e *env, st *Store) (int, *Store) {
	head, tail, st := in.buildCells(nested, e, st)

	tk := nested.brace
	cell, st := in.allocBlock(nodeSize, st, tk)
	st = in.write(st, cell+cellHeader, len(nested.elements), tk)
	st = in.write(st, cell+cellPayload, head, tk)
	st = in.write(st, cell+cellNext, endOfList, tk)
	st = in.write(st, cell+cellTail, tail, tk)
	return cell, st
}

// allocBlock reserves size slots at the store's high-water mark. Cells are
// not bound to any name.
func (in *interpreter) allocBlock(size int, st *Store, tk *token) (int, *Store) {
	loc := st.Top()
	st, err := st.initRange(loc, size)
	if err != nil {
		runtimeErr(err, tk)
	}
	return loc, st
}
