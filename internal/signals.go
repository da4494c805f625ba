package internal

// Non-local control flow is carried by panic/recover. Each signal
// type is recovered at the frame that consumes it: returnSignal at a
// function call (or, if it escapes one, at the top-level run),
// throwSignal at a Try/Catch or the top-level run, stopSignal at the
// top-level run.

type returnSignal struct {
	value interface{}
	line  int
}

type throwSignal struct {
	value interface{}
}

type stopSignal struct{}

// raiseRuntime converts an operator or built-in failure into a thrown
// String describing the error.
func raiseRuntime(kind errorKind, line int, format string, args ...interface{}) {
	panic(throwSignal{value: convoString(newConvoError(kind, line, format, args...).Error())})
}
