// Package jsonval provides defaulting accessors over a decoded JSON
// document. Every accessor tolerates absent keys and wrong-typed values,
// returning a zero value instead of failing, so callers can walk a
// partially populated report without guarding every level.
package jsonval

// AsMap returns v as an object, or an empty map when v is not an object.
func AsMap(v interface{}) map[string]interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return m
}

// Map returns the object stored under key, or an empty map when the key
// is absent or holds a non-object value.
func Map(m map[string]interface{}, key string) map[string]interface{} {
	return AsMap(m[key])
}

// Descend walks nested objects along path, defaulting to an empty map at
// every absent level.
func Descend(m map[string]interface{}, path ...string) map[string]interface{} {
	for _, key := range path {
		m = Map(m, key)
	}
	return m
}

// Slice returns the array stored under key, or nil.
func Slice(m map[string]interface{}, key string) []interface{} {
	s, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	return s
}

func String(m map[string]interface{}, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func Bool(m map[string]interface{}, key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

// Float returns the number under key. encoding/json decodes every JSON
// number into a float64, so this covers integers in the document too.
func Float(m map[string]interface{}, key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

// Int64 returns the number under key truncated to an integer.
func Int64(m map[string]interface{}, key string) (int64, bool) {
	f, ok := m[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
