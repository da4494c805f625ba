package internal

import "fmt"

// Class is a constructor descriptor: a prototype environment built
// once when the ClassDef is evaluated, plus a method table resolved
// from it.
type Class struct {
	name      string
	def       *classDefStmt
	prototype *env
	methods   map[string]*Function
}

func (c *Class) findMethod(name string) *Function {
	return c.methods[name]
}

func (c *Class) arity() int {
	return len(c.def.params)
}

// call allocates a fresh Instance, then re-runs the entire class body
// in an environment chained to the prototype with `this` bound and
// the constructor parameters bound positionally. Nested Defines
// re-encountered here are harmless re-registrations; Let this.<field>
// statements now write into the instance's field table because
// `this` resolves.
func (c *Class) call(ev *evaluator, line int, args []interface{}) interface{} {
	if len(args) != c.arity() {
		raiseRuntime(kindArityError, line, errWrongArity, c.arity(), len(args))
	}
	instance := &Instance{class: c, fields: make(map[string]interface{})}
	frame := newEnv(c.prototype)
	frame.define("this", instance)
	for i, p := range c.def.params {
		frame.define(p.lexeme, args[i])
	}
	ev.executeBlockIn(c.def.body, frame)
	return instance
}

func (c *Class) get(tk *token) interface{} {
	raiseRuntime(kindTypeError, tk.line, errUndefinedProp, tk.lexeme)
	return nil
}

func (c *Class) set(tk *token, value interface{}) {
	raiseRuntime(kindTypeError, tk.line, errReadOnly, tk.lexeme)
}

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.name)
}

// Instance is a per-object field table plus a reference to its class.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

// get resolves member access on an instance: fields first, then a
// fall back to the class's methods, bound to this instance.
func (i *Instance) get(tk *token) interface{} {
	if v, ok := i.fields[tk.lexeme]; ok {
		return v
	}
	if method := i.class.findMethod(tk.lexeme); method != nil {
		return method.bind(i)
	}
	raiseRuntime(kindTypeError, tk.line, errUndefinedProp, tk.lexeme)
	return nil
}

func (i *Instance) set(tk *token, value interface{}) {
	i.fields[tk.lexeme] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("<instance of %s>", i.class.name)
}
