package internal

import "os"

// defineEnvGlobals registers the environment built-ins: get_env,
// set_env, has_env, list_env.
func defineEnvGlobals(ev *evaluator) {
	e := ev.globals

	native(e, "get_env", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		return convoString(os.Getenv(string(argString(line, args, 0))))
	})

	native(e, "set_env", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		name := argString(line, args, 0)
		value := argString(line, args, 1)
		if err := os.Setenv(string(name), string(value)); err != nil {
			raiseRuntime(kindRuntimeError, line, "set_env: %v", err)
		}
		return nil
	})

	native(e, "has_env", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		_, ok := os.LookupEnv(string(argString(line, args, 0)))
		return convoBool(ok)
	})

	native(e, "list_env", 0, func(ev *evaluator, line int, args []interface{}) interface{} {
		entries := os.Environ()
		elements := make([]interface{}, len(entries))
		for i, entry := range entries {
			elements[i] = convoString(entry)
		}
		return newConvoList(elements)
	})
}
