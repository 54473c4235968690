package internal

import (
	"github.com/sirupsen/logrus"
)

func (in *interpreter) function(name *token) *fnDecl {
	fn, ok := in.functions[name.lexeme]
	if !ok {
		runtimeErr(ErrFunctionNotFound, name)
	}
	return fn
}

// call evaluates the arguments left to right in the caller's environment and
// runs the callee in a fresh frame. The language has no return values, so
// every call yields noValue.
func (in *interpreter) call(c *callExpr, e *env, st *Store) (int, *Store) {
	fn := in.function(c.callee)

	values := make([]int, len(c.arguments))
	for i, arg := range c.arguments {
		values[i], st = in.eval(arg, e, st)
	}

	return noValue, in.invoke(fn, values, st, c.paren)
}

// invoke binds values to the parameters of fn above the store's high-water
// mark, with only the globals in scope, and executes the body. The frame
// environment is dropped on return; its addresses are not reclaimed.
func (in *interpreter) invoke(fn *fnDecl, values []int, st *Store, tk *token) *Store {
	names := make([]string, len(fn.params))
	for i, param := range fn.params {
		names[i] = param.name.lexeme
	}

	base := max(in.globals.nextloc, st.Top())
	frame, st := in.bindVars(names, values, in.globals, st, tk)

	if in.trace {
		in.log.WithFields(logrus.Fields{
			"fn":    fn.name.lexeme,
			"frame": base,
			"args":  values,
		}).Debug("call")
	}

	st = in.exec(fn.body, frame, st)

	if in.trace {
		in.log.WithFields(logrus.Fields{
			"fn":  fn.name.lexeme,
			"top": st.Top(),
		}).Debug("return")
	}

	return st
}
