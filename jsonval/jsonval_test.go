package jsonval

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, doc string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return m
}

func TestDescend(t *testing.T) {
	doc := decode(t, `{"a":{"b":{"c":{"leaf":1}}},"flat":2,"wrong":"type"}`)

	tests := []struct {
		name     string
		path     []string
		wantKeys int
	}{
		{"full path", []string{"a", "b", "c"}, 1},
		{"missing top level", []string{"nope"}, 0},
		{"missing mid level", []string{"a", "nope", "c"}, 0},
		{"non-object level", []string{"wrong", "b"}, 0},
		{"scalar level", []string{"flat", "b"}, 0},
		{"empty path", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Descend(doc, tt.path...)
			if got == nil {
				t.Fatal("Descend() returned nil, want a map")
			}
			if len(got) != tt.wantKeys {
				t.Errorf("Descend(%v) has %d keys, want %d", tt.path, len(got), tt.wantKeys)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	doc := decode(t, `{"s":"text","b":true,"n":3.318,"i":1234567890,"arr":[1,2],"obj":{"k":1}}`)

	if s, ok := String(doc, "s"); !ok || s != "text" {
		t.Errorf("String() = %q, %t", s, ok)
	}
	if _, ok := String(doc, "n"); ok {
		t.Error("String() on a number should not be ok")
	}
	if b, ok := Bool(doc, "b"); !ok || !b {
		t.Errorf("Bool() = %t, %t", b, ok)
	}
	if f, ok := Float(doc, "n"); !ok || f != 3.318 {
		t.Errorf("Float() = %v, %t", f, ok)
	}
	if i, ok := Int64(doc, "i"); !ok || i != 1234567890 {
		t.Errorf("Int64() = %d, %t", i, ok)
	}
	if _, ok := Int64(doc, "s"); ok {
		t.Error("Int64() on a string should not be ok")
	}
	if s := Slice(doc, "arr"); len(s) != 2 {
		t.Errorf("Slice() len = %d, want 2", len(s))
	}
	if s := Slice(doc, "obj"); s != nil {
		t.Error("Slice() on an object should be nil")
	}
	if m := Map(doc, "obj"); len(m) != 1 {
		t.Errorf("Map() len = %d, want 1", len(m))
	}
	if m := Map(doc, "missing"); m == nil || len(m) != 0 {
		t.Errorf("Map() on a missing key = %v, want empty map", m)
	}
}

func TestAsMap(t *testing.T) {
	if m := AsMap("not a map"); m == nil || len(m) != 0 {
		t.Errorf("AsMap() on a string = %v, want empty map", m)
	}
	if m := AsMap(nil); m == nil {
		t.Error("AsMap(nil) = nil, want empty map")
	}
	if m := AsMap(map[string]interface{}{"k": 1}); len(m) != 1 {
		t.Errorf("AsMap() len = %d, want 1", len(m))
	}
}
