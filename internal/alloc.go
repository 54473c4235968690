package internal

import (
	"github.com/sirupsen/logrus"
)

func (in *interpreter) read(st *Store, addr int, tk *token) int {
	value, err := st.Get(addr)
	if err != nil {
		runtimeErr(err, tk)
	}
	return value
}

func (in *interpreter) write(st *Store, addr, value int, tk *token) *Store {
	st, err := st.set(addr, value)
	if err != nil {
		runtimeErr(err, tk)
	}
	return st
}

// reserve initializes n slots from the first free address of e and returns
// the base address. Addresses below the store's high-water mark may belong
// to a frame or list that outlived its scope, so they are never handed out
// again.
func (in *interpreter) reserve(e *env, st *Store, n int, tk *token) (int, *Store) {
	loc := max(e.nextloc, st.Top())
	st, err := st.initRange(loc, n)
	if err != nil {
		runtimeErr(err, tk)
	}
	return loc, st
}

// allocate binds a declared variable to fresh storage. A scalar gets one slot
// holding the unbound sentinel. An array of length n gets n element slots
// after the slot the name is bound to, and that slot holds the address of
// the first element.
func (in *interpreter) allocate(d *varDecl, e *env, st *Store) (*env, *Store) {
	size := 1
	if d.typ.isArray() {
		size += d.typ.length
	}

	loc, st := in.reserve(e, st, size, d.name)
	if d.typ.isArray() {
		st = in.write(st, loc, loc+1, d.name)
	} else {
		st = in.write(st, loc, unbound, d.name)
	}

	if in.trace {
		in.log.WithFields(logrus.Fields{
			"name": d.name.lexeme,
			"addr": loc,
			"size": size,
		}).Debug("allocate")
	}

	return e.extend(d.name.lexeme, loc), st
}

// bindVar binds name to the first free address, holding value
func (in *interpreter) bindVar(name string, value int, e *env, st *Store, tk *token) (*env, *Store) {
	loc := max(e.nextloc, st.Top())
	st = in.write(st, loc, value, tk)
	return e.extend(name, loc), st
}

// bindVars binds names to values pairwise, left to right
func (in *interpreter) bindVars(names []string, values []int, e *env, st *Store, tk *token) (*env, *Store) {
	if len(names) != len(values) {
		runtimeErr(ErrArityMismatch, tk)
	}
	for i := range names {
		e, st = in.bindVar(names[i], values[i], e, st, tk)
	}
	return e, st
}
