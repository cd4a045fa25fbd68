package domain

import "encoding/json"

// decodeObject reads body as a JSON object. Anything that is not an object
// (empty input, malformed JSON, arrays, scalars, null) yields an empty map.
func decodeObject(body []byte) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// stringField returns the named field if it holds a JSON string.
// Missing fields and fields of any other JSON type read as "".
func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// truthyField reports whether the named field holds a non-empty value.
// Missing fields, null, false, 0, "", [] and {} are all false.
func truthyField(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
