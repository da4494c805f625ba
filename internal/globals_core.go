package internal

import (
	"math"
	"math/rand"
	"strconv"
)

// defineCoreGlobals registers the arithmetic/utility built-ins:
// length, to_text, to_number, range, round, abs, sqrt, power, floor,
// ceiling, random, random_int.
func defineCoreGlobals(ev *evaluator) {
	e := ev.globals

	native(e, "length", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case convoString:
			return convoNumber(len(v))
		case *convoList:
			return convoNumber(len(v.elements))
		case *convoDict:
			return convoNumber(len(v.keys))
		default:
			raiseRuntime(kindTypeError, line, errOnlyOnLists)
			return nil
		}
	})

	native(e, "to_text", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoString(stringify(args[0]))
	})

	native(e, "to_number", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		s := argString(line, args, 0)
		n, err := strconv.ParseFloat(string(s), 64)
		if err != nil {
			raiseRuntime(kindTypeError, line, "cannot convert %q to a number", string(s))
		}
		return convoNumber(n)
	})

	native(e, "range", -1, func(ev *evaluator, line int, args []interface{}) interface{} {
		var start, end int64
		switch len(args) {
		case 1:
			end = int64(argNumber(line, args, 0))
		case 2:
			start = int64(argNumber(line, args, 0))
			end = int64(argNumber(line, args, 1))
		default:
			raiseRuntime(kindArityError, line, errWrongArity, 2, len(args))
		}
		elements := make([]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			elements = append(elements, convoNumber(i))
		}
		return newConvoList(elements)
	})

	native(e, "round", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoNumber(math.Round(float64(argNumber(line, args, 0))))
	})

	native(e, "abs", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoNumber(math.Abs(float64(argNumber(line, args, 0))))
	})

	native(e, "random_int", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		min := int64(argNumber(line, args, 0))
		max := int64(argNumber(line, args, 1))
		if max < min {
			raiseRuntime(kindRuntimeError, line, "random_int: max must be >= min")
		}
		return convoNumber(min + rand.Int63n(max-min+1))
	})

	native(e, "random", 0, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoNumber(rand.Float64())
	})

	native(e, "sqrt", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		n := float64(argNumber(line, args, 0))
		if n < 0 {
			raiseRuntime(kindRuntimeError, line, "sqrt: argument must be non-negative")
		}
		return convoNumber(math.Sqrt(n))
	})

	native(e, "power", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		base := float64(argNumber(line, args, 0))
		exponent := float64(argNumber(line, args, 1))
		return convoNumber(math.Pow(base, exponent))
	})

	native(e, "floor", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoNumber(math.Floor(float64(argNumber(line, args, 0))))
	})

	native(e, "ceiling", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoNumber(math.Ceil(float64(argNumber(line, args, 0))))
	})
}
