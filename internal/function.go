package internal

import "fmt"

// callable is satisfied by every value that can appear on the left of
// a Call: user functions, bound methods, native built-ins and classes
// (whose call constructs an Instance).
type callable interface {
	arity() int
	call(ev *evaluator, line int, args []interface{}) interface{}
}

// Function is a user-defined Convo function or bound method. Its
// closure is the environment it was defined in, which is what gives
// it closure-capture semantics.
type Function struct {
	decl    *functionDefStmt
	closure *env
}

func (f *Function) name() string {
	if f.decl.name == nil {
		return "anonymous"
	}
	return f.decl.name.lexeme
}

func (f *Function) arity() int {
	return len(f.decl.params)
}

// call runs the body in a fresh environment chained to the closure,
// with parameters bound positionally. A Return signal supplies the
// result; running off the end of the body yields Null.
func (f *Function) call(ev *evaluator, line int, args []interface{}) (result interface{}) {
	if len(args) != f.arity() {
		raiseRuntime(kindArityError, line, errWrongArity, f.arity(), len(args))
	}
	frame := newEnv(f.closure)
	for i, p := range f.decl.params {
		frame.define(p.lexeme, args[i])
	}
	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				result = ret.value
				return
			}
			panic(r)
		}
	}()
	ev.executeBlockIn(f.decl.body, frame)
	return nil
}

// bind returns a copy of the method whose closure additionally binds
// `this` to the receiving instance.
func (f *Function) bind(instance *Instance) *Function {
	bound := newEnv(f.closure)
	bound.define("this", instance)
	return &Function{decl: f.decl, closure: bound}
}

func (f *Function) String() string {
	return fmt.Sprintf("<function %s>", f.name())
}

// nativeFn wraps a host-provided built-in. arityValue of -1 means
// variadic: the built-in checks its own argument count.
type nativeFn struct {
	name       string
	arityValue int
	fn         func(ev *evaluator, line int, args []interface{}) interface{}
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(ev *evaluator, line int, args []interface{}) interface{} {
	if n.arityValue >= 0 && len(args) != n.arityValue {
		raiseRuntime(kindArityError, line, errWrongArity, n.arityValue, len(args))
	}
	return n.fn(ev, line, args)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<function %s>", n.name)
}
