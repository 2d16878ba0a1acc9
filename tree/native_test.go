package tree

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNativeKind(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected Kind
	}{
		{"nil", nil, Null},
		{"true", true, True},
		{"false", false, False},
		{"string", "a", String},
		{"json number", json.Number("1.5"), Number},
		{"float64", 1.5, Number},
		{"int", 7, Number},
		{"uint64", uint64(7), Number},
		{"array", []any{}, Array},
		{"object", map[string]any{}, Object},
	}
	ad := Native{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ad.Kind(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.expected {
				t.Errorf("Kind(%v) = %v, want %v", tt.node, got, tt.expected)
			}
		})
	}
}

func TestNativeKindUnsupported(t *testing.T) {
	ad := Native{}
	for _, node := range []any{make(chan int), struct{}{}, []string{"a"}} {
		if _, err := ad.Kind(node); !errors.Is(err, ErrUnsupportedNode) {
			t.Errorf("Kind(%T): got %v, want ErrUnsupportedNode", node, err)
		}
	}
}

func TestNativeNumber(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected string
	}{
		{"json number verbatim", json.Number("1.230e2"), "1.230e2"},
		{"float64 shortest", 1.0, "1"},
		{"float64 fraction", 0.5, "0.5"},
		{"float64 large", 1e21, "1e+21"},
		{"int", -42, "-42"},
		{"uint64 full range", uint64(18446744073709551615), "18446744073709551615"},
	}
	ad := Native{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ad.Number(tt.node); got != tt.expected {
				t.Errorf("Number(%v) = %q, want %q", tt.node, got, tt.expected)
			}
		})
	}
}

func TestNativeContainers(t *testing.T) {
	ad := Native{}
	arr := []any{1, "a", nil}
	if got := ad.Len(arr); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	var elems []any
	for v := range ad.Elements(arr) {
		elems = append(elems, v)
	}
	if len(elems) != 3 || elems[1] != "a" {
		t.Errorf("Elements = %v", elems)
	}

	obj := map[string]any{"a": 1, "b": 2}
	if got := ad.Len(obj); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	seen := map[string]any{}
	for k, v := range ad.Entries(obj) {
		seen[k] = v
	}
	if len(seen) != 2 || seen["b"] != 2 {
		t.Errorf("Entries = %v", seen)
	}
}
