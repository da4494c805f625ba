package internal

// defineCollectionGlobals registers the list and dict built-ins:
// append, remove, get, keys, values, to_list (contains lives in
// globals_strings.go since it is shared across all three container
// kinds).
func defineCollectionGlobals(ev *evaluator) {
	e := ev.globals

	native(e, "append", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		list, ok := args[0].(*convoList)
		if !ok {
			raiseRuntime(kindTypeError, line, errExpectedList)
		}
		list.elements = append(list.elements, args[1])
		return list
	})

	native(e, "remove", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		switch container := args[0].(type) {
		case *convoList:
			i := int64(argNumber(line, args, 1))
			n := int64(len(container.elements))
			if i < 0 {
				i += n
			}
			if i < 0 || i >= n {
				raiseRuntime(kindIndexError, line, errIndexOutOfRange)
			}
			removed := container.elements[i]
			container.elements = append(container.elements[:i], container.elements[i+1:]...)
			return removed
		case *convoDict:
			key := argString(line, args, 1)
			removed, ok := container.values[string(key)]
			if !ok {
				raiseRuntime(kindIndexError, line, errKeyNotFound, string(key))
			}
			container.delete(string(key))
			return removed
		default:
			raiseRuntime(kindTypeError, line, errOnlyOnLists)
			return nil
		}
	})

	native(e, "get", 3, func(ev *evaluator, line int, args []interface{}) interface{} {
		switch container := args[0].(type) {
		case *convoList:
			i := int64(argNumber(line, args, 1))
			n := int64(len(container.elements))
			if i < 0 {
				i += n
			}
			if i < 0 || i >= n {
				return args[2]
			}
			return container.elements[i]
		case *convoDict:
			key, ok := args[1].(convoString)
			if !ok {
				raiseRuntime(kindTypeError, line, errExpectedKey)
			}
			if v, ok := container.values[string(key)]; ok {
				return v
			}
			return args[2]
		default:
			raiseRuntime(kindTypeError, line, errOnlyOnLists)
			return nil
		}
	})

	native(e, "keys", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		dict, ok := args[0].(*convoDict)
		if !ok {
			raiseRuntime(kindTypeError, line, errExpectedDict)
		}
		elements := make([]interface{}, len(dict.keys))
		for i, k := range dict.keys {
			elements[i] = convoString(k)
		}
		return newConvoList(elements)
	})

	native(e, "values", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		dict, ok := args[0].(*convoDict)
		if !ok {
			raiseRuntime(kindTypeError, line, errExpectedDict)
		}
		elements := make([]interface{}, len(dict.keys))
		for i, k := range dict.keys {
			elements[i] = dict.values[k]
		}
		return newConvoList(elements)
	})

	// to_list converts a String to its characters, copies a List, turns
	// a Dict into its keys, and wraps anything else in a one-element
	// list.
	native(e, "to_list", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case convoString:
			runes := []rune(string(v))
			elements := make([]interface{}, len(runes))
			for i, c := range runes {
				elements[i] = convoString(c)
			}
			return newConvoList(elements)
		case *convoList:
			return newConvoList(append([]interface{}{}, v.elements...))
		case *convoDict:
			elements := make([]interface{}, len(v.keys))
			for i, k := range v.keys {
				elements[i] = convoString(k)
			}
			return newConvoList(elements)
		default:
			return newConvoList([]interface{}{v})
		}
	})
}
