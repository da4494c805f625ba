package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// operator tags a binary or unary operation so a value's getOperator
// can dispatch to the right implementation.
type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opMul operator = "mul"
	opDiv operator = "div"
	opNeg operator = "neg"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opGt  operator = "gt"
	opGte operator = "gte"
	opLt  operator = "lt"
	opLte operator = "lte"
)

type operatorApply func(line int, other interface{}) interface{}

// convoValue is satisfied by every member-bearing runtime value:
// Strings, Lists, Dicts, Instances and Classes. Number and Bool also
// implement it, even though they have no real properties beyond the
// operator surface, so the evaluator can treat member access
// uniformly.
type convoValue interface {
	get(tk *token) interface{}
	set(tk *token, value interface{})
}

// operand is satisfied by values with binary operators: Number and
// String.
type operand interface {
	getOperator(op operator) operatorApply
}

// convoNumber is the language's single numeric type, a 64-bit float.
type convoNumber float64

func (n convoNumber) get(tk *token) interface{} {
	raiseRuntime(kindTypeError, tk.line, errUndefinedProp, tk.lexeme)
	return nil
}

func (n convoNumber) set(tk *token, value interface{}) {
	raiseRuntime(kindTypeError, tk.line, errReadOnly, tk.lexeme)
}

func (n convoNumber) getOperator(op operator) operatorApply {
	switch op {
	case opAdd:
		return func(line int, other interface{}) interface{} {
			if s, ok := other.(convoString); ok {
				return convoString(stringify(n) + string(s))
			}
			m, ok := other.(convoNumber)
			if !ok {
				raiseRuntime(kindTypeError, line, errOnlyNumbers, "+")
			}
			return n + m
		}
	case opSub:
		return n.numericOp(op, func(a, b float64) float64 { return a - b })
	case opMul:
		return n.numericOp(op, func(a, b float64) float64 { return a * b })
	case opDiv:
		return func(line int, other interface{}) interface{} {
			m, ok := other.(convoNumber)
			if !ok {
				raiseRuntime(kindTypeError, line, errOnlyNumbers, "/")
			}
			if m == 0 {
				raiseRuntime(kindRuntimeError, line, errDivisionByZero)
			}
			return n / m
		}
	case opGt:
		return n.numericCmp(op, func(a, b float64) bool { return a > b })
	case opGte:
		return n.numericCmp(op, func(a, b float64) bool { return a >= b })
	case opLt:
		return n.numericCmp(op, func(a, b float64) bool { return a < b })
	case opLte:
		return n.numericCmp(op, func(a, b float64) bool { return a <= b })
	}
	return func(line int, other interface{}) interface{} {
		raiseRuntime(kindTypeError, line, errUndefinedOp, string(op))
		return nil
	}
}

func (n convoNumber) numericOp(op operator, apply func(a, b float64) float64) operatorApply {
	return func(line int, other interface{}) interface{} {
		m, ok := other.(convoNumber)
		if !ok {
			raiseRuntime(kindTypeError, line, errOnlyNumbers, string(op))
		}
		return convoNumber(apply(float64(n), float64(m)))
	}
}

func (n convoNumber) numericCmp(op operator, apply func(a, b float64) bool) operatorApply {
	return func(line int, other interface{}) interface{} {
		m, ok := other.(convoNumber)
		if !ok {
			raiseRuntime(kindTypeError, line, errOnlyNumbers, string(op))
		}
		return convoBool(apply(float64(n), float64(m)))
	}
}

func (n convoNumber) String() string {
	return stringify(n)
}

// convoString is the runtime String value.
type convoString string

func (s convoString) get(tk *token) interface{} {
	raiseRuntime(kindTypeError, tk.line, errUndefinedProp, tk.lexeme)
	return nil
}

func (s convoString) set(tk *token, value interface{}) {
	raiseRuntime(kindTypeError, tk.line, errReadOnly, tk.lexeme)
}

func (s convoString) getOperator(op operator) operatorApply {
	switch op {
	case opAdd:
		return func(line int, other interface{}) interface{} {
			return s + convoString(stringify(other))
		}
	case opGt:
		return s.stringCmp(op, func(a, b string) bool { return a > b })
	case opGte:
		return s.stringCmp(op, func(a, b string) bool { return a >= b })
	case opLt:
		return s.stringCmp(op, func(a, b string) bool { return a < b })
	case opLte:
		return s.stringCmp(op, func(a, b string) bool { return a <= b })
	}
	return func(line int, other interface{}) interface{} {
		raiseRuntime(kindTypeError, line, errUndefinedOp, string(op))
		return nil
	}
}

func (s convoString) stringCmp(op operator, apply func(a, b string) bool) operatorApply {
	return func(line int, other interface{}) interface{} {
		t, ok := other.(convoString)
		if !ok {
			raiseRuntime(kindTypeError, line, errOnlyNumbersOrStrings, string(op))
		}
		return convoBool(apply(string(s), string(t)))
	}
}

func (s convoString) String() string {
	return string(s)
}

// convoBool is the spec's Bool value; it carries no operators of its
// own — equality is handled structurally by the evaluator.
type convoBool bool

func (b convoBool) get(tk *token) interface{} {
	raiseRuntime(kindTypeError, tk.line, errUndefinedProp, tk.lexeme)
	return nil
}

func (b convoBool) set(tk *token, value interface{}) {
	raiseRuntime(kindTypeError, tk.line, errReadOnly, tk.lexeme)
}

func (b convoBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}

// truthy treats only null and false as falsy; every other value,
// including 0 and the empty string, is truthy.
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(convoBool); ok {
		return bool(b)
	}
	return true
}

// stringify formats a runtime value the way Say and string
// concatenation render it.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case convoBool:
		return fmt.Sprintf("%v", bool(v))
	case convoNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case convoString:
		return string(v)
	case *convoList:
		parts := make([]string, len(v.elements))
		for i, el := range v.elements {
			parts[i] = stringify(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *convoDict:
		parts := make([]string, 0, len(v.keys))
		for _, k := range v.keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, stringify(v.values[k])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Function:
		return fmt.Sprintf("<function %s>", v.name())
	case *nativeFn:
		return fmt.Sprintf("<function %s>", v.name)
	case *Class:
		return fmt.Sprintf("<class %s>", v.name)
	case *Instance:
		return fmt.Sprintf("<instance of %s>", v.class.name)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Stringify is the exported form of stringify, for callers outside
// this package (the REPL) that need to render a Result.Value.
func Stringify(value interface{}) string {
	return stringify(value)
}
