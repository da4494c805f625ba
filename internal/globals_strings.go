package internal

import "strings"

// defineStringGlobals registers the string built-ins: lower, upper,
// contains, split, join, trim, replace, starts_with, ends_with.
func defineStringGlobals(ev *evaluator) {
	e := ev.globals

	native(e, "lower", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoString(strings.ToLower(string(argString(line, args, 0))))
	})

	native(e, "upper", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoString(strings.ToUpper(string(argString(line, args, 0))))
	})

	native(e, "contains", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		switch container := args[0].(type) {
		case convoString:
			return convoBool(strings.Contains(string(container), string(argString(line, args, 1))))
		case *convoList:
			for _, el := range container.elements {
				if convoEquals(el, args[1]) {
					return convoBool(true)
				}
			}
			return convoBool(false)
		case *convoDict:
			key, ok := args[1].(convoString)
			if !ok {
				raiseRuntime(kindTypeError, line, errExpectedKey)
			}
			_, found := container.values[string(key)]
			return convoBool(found)
		default:
			raiseRuntime(kindTypeError, line, errOnlyOnLists)
			return nil
		}
	})

	native(e, "split", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		s := argString(line, args, 0)
		sep := argString(line, args, 1)
		parts := strings.Split(string(s), string(sep))
		elements := make([]interface{}, len(parts))
		for i, p := range parts {
			elements[i] = convoString(p)
		}
		return newConvoList(elements)
	})

	native(e, "join", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		list, ok := args[0].(*convoList)
		if !ok {
			raiseRuntime(kindTypeError, line, errExpectedList)
		}
		sep := argString(line, args, 1)
		parts := make([]string, len(list.elements))
		for i, el := range list.elements {
			parts[i] = stringify(el)
		}
		return convoString(strings.Join(parts, string(sep)))
	})

	native(e, "trim", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoString(strings.TrimSpace(string(argString(line, args, 0))))
	})

	native(e, "replace", 3, func(ev *evaluator, line int, args []interface{}) interface{} {
		text := argString(line, args, 0)
		old := argString(line, args, 1)
		new := argString(line, args, 2)
		return convoString(strings.ReplaceAll(string(text), string(old), string(new)))
	})

	native(e, "starts_with", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoBool(strings.HasPrefix(string(argString(line, args, 0)), string(argString(line, args, 1))))
	})

	native(e, "ends_with", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoBool(strings.HasSuffix(string(argString(line, args, 0)), string(argString(line, args, 1))))
	})
}
