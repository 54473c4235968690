package internal

// env is an immutable chain of name to address bindings. extend never
// modifies the receiver, so a scope that extends an env can not leak its
// bindings to the scope it came from. The most recent binding wins.
type env struct {
	enclosing *env

	name string
	addr int
	// nextloc is the first free address for this scope chain
	nextloc int
}

func newEnv(nextloc int) *env {
	return &env{nextloc: nextloc}
}

func (e *env) extend(name string, addr int) *env {
	return &env{
		enclosing: e,
		name:      name,
		addr:      addr,
		nextloc:   max(e.nextloc, addr+1),
	}
}

func (e *env) lookup(name *token) int {
	for b := e; b.enclosing != nil; b = b.enclosing {
		if b.name == name.lexeme {
			return b.addr
		}
	}
	runtimeErr(ErrNameNotFound, name)
	return 0
}
