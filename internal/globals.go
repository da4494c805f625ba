package internal

// defineGlobals seeds a freshly created evaluator's global
// environment with every built-in category, one function per
// category, each registering a handful of *nativeFn values.
func defineGlobals(ev *evaluator) {
	defineCoreGlobals(ev)
	defineStringGlobals(ev)
	defineCollectionGlobals(ev)
	defineIOGlobals(ev)
	defineEnvGlobals(ev)
}

func native(e *env, name string, arity int, fn func(ev *evaluator, line int, args []interface{}) interface{}) {
	e.define(name, &nativeFn{name: name, arityValue: arity, fn: fn})
}

func argNumber(line int, args []interface{}, i int) convoNumber {
	n, ok := args[i].(convoNumber)
	if !ok {
		raiseRuntime(kindTypeError, line, errOnlyNumbers, "argument")
	}
	return n
}

func argString(line int, args []interface{}, i int) convoString {
	s, ok := args[i].(convoString)
	if !ok {
		raiseRuntime(kindTypeError, line, errExpectedString)
	}
	return s
}
