package internal

import (
	"encoding/json"
	"os"
	"strings"
)

// defineIOGlobals registers the I/O built-ins: read_file, write_file,
// append_file, file_exists, file_size, delete_file, read_lines,
// read_json, write_json. read_json/write_json use the standard
// library's encoding/json; DESIGN.md records why no third-party JSON
// library is wired instead.
func defineIOGlobals(ev *evaluator) {
	e := ev.globals

	native(e, "read_file", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		data, err := os.ReadFile(string(path))
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "read_file: %v", err)
		}
		return convoString(normalizeLineEndings(string(data)))
	})

	native(e, "write_file", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		content := argString(line, args, 1)
		if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
			raiseRuntime(kindRuntimeError, line, "write_file: %v", err)
		}
		return nil
	})

	native(e, "append_file", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		content := argString(line, args, 1)
		f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "append_file: %v", err)
		}
		defer f.Close()
		if _, err := f.WriteString(string(content)); err != nil {
			raiseRuntime(kindRuntimeError, line, "append_file: %v", err)
		}
		return nil
	})

	native(e, "file_exists", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		_, err := os.Stat(string(path))
		return convoBool(err == nil)
	})

	native(e, "file_size", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		info, err := os.Stat(string(path))
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "file_size: %v", err)
		}
		return convoNumber(info.Size())
	})

	native(e, "delete_file", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		if err := os.Remove(string(path)); err != nil {
			raiseRuntime(kindRuntimeError, line, "delete_file: %v", err)
		}
		return nil
	})

	native(e, "read_lines", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		data, err := os.ReadFile(string(path))
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "read_lines: %v", err)
		}
		text := normalizeLineEndings(string(data))
		text = strings.TrimSuffix(text, "\n")
		lines := strings.Split(text, "\n")
		elements := make([]interface{}, len(lines))
		for i, l := range lines {
			elements[i] = convoString(l)
		}
		return newConvoList(elements)
	})

	native(e, "read_json", 1, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		data, err := os.ReadFile(string(path))
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "read_json: %v", err)
		}
		var parsed interface{}
		if err := json.Unmarshal(data, &parsed); err != nil {
			raiseRuntime(kindRuntimeError, line, "read_json: %v", err)
		}
		return jsonToConvo(parsed)
	})

	native(e, "write_json", 2, func(ev *evaluator, line int, args []interface{}) interface{} {
		path := argString(line, args, 0)
		data, err := json.Marshal(convoToJSON(args[1]))
		if err != nil {
			raiseRuntime(kindRuntimeError, line, "write_json: %v", err)
		}
		if err := os.WriteFile(string(path), data, 0o644); err != nil {
			raiseRuntime(kindRuntimeError, line, "write_json: %v", err)
		}
		return nil
	})
}

func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// convoToJSON converts a runtime value into plain Go data that
// encoding/json can marshal.
func convoToJSON(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case convoBool:
		return bool(v)
	case convoNumber:
		return float64(v)
	case convoString:
		return string(v)
	case *convoList:
		out := make([]interface{}, len(v.elements))
		for i, el := range v.elements {
			out[i] = convoToJSON(el)
		}
		return out
	case *convoDict:
		out := make(map[string]interface{}, len(v.keys))
		for _, k := range v.keys {
			out[k] = convoToJSON(v.values[k])
		}
		return out
	default:
		return nil
	}
}

// jsonToConvo converts parsed JSON data back into runtime values.
func jsonToConvo(data interface{}) interface{} {
	switch v := data.(type) {
	case nil:
		return nil
	case bool:
		return convoBool(v)
	case float64:
		return convoNumber(v)
	case string:
		return convoString(v)
	case []interface{}:
		elements := make([]interface{}, len(v))
		for i, el := range v {
			elements[i] = jsonToConvo(el)
		}
		return newConvoList(elements)
	case map[string]interface{}:
		d := newConvoDict()
		for k, val := range v {
			d.set_(k, jsonToConvo(val))
		}
		return d
	default:
		return nil
	}
}
