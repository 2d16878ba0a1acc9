package jcs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/canonform/jcs-format/go-jcs/jcs"
	"github.com/canonform/jcs-format/go-jcs/tree"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"null", `null`, `null`},
		{"bools", `[true,false]`, `[true,false]`},
		{"empty object", `{}`, `{}`},
		{"empty array", `[]`, `[]`},
		{"key order", `{"b":1,"a":[2,3]}`, `{"a":[2,3],"b":1}`},
		{"whitespace dropped", "{\n  \"a\" : 1 ,\n  \"b\" : 2\n}", `{"a":1,"b":2}`},
		{"empty key first", `{"a":1,"":0}`, `{"":0,"a":1}`},
		{"numbers normalized", `[1.0,1e21,0.12345678]`, `[1,1e+21,0.1234568]`},
		{"strings escaped", `["aA\u000b"]`, `["aA\u000b"]`},
		{"nested order", `{"z":{"b":1,"a":2},"a":[{"y":0,"x":1}]}`,
			`{"a":[{"x":1,"y":0}],"z":{"a":2,"b":1}}`},
		{"singleton array", `[0]`, `[0]`},
		{"empty containers nested", `[[],{},[{}]]`, `[[],{},[{}]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jcs.Transform([]byte(tt.in))
			if err != nil {
				t.Fatalf("Transform(%q): %v", tt.in, err)
			}
			if string(got) != tt.expected {
				t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.expected)
			}
			// canonical output is a fixed point
			again, err := jcs.Transform(got)
			if err != nil {
				t.Fatalf("Transform(%q): %v", got, err)
			}
			if string(again) != string(got) {
				t.Errorf("Transform(%q) = %q, not idempotent", got, again)
			}
		})
	}
}

func TestTransformErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`{`,
		`{"a":}`,
		`{} {}`,
		`1 2`,
		`tru`,
	} {
		t.Run(in, func(t *testing.T) {
			if got, err := jcs.Transform([]byte(in)); err == nil {
				t.Errorf("Transform(%q) = %q, want error", in, got)
			}
		})
	}
}

func TestCanonizeKeyOrderUTF16(t *testing.T) {
	// U+10000 encodes to a surrogate pair and must sort before U+FF61,
	// the opposite of code-point order.
	node := map[string]any{
		"｡":     1,
		"\U00010000": 2,
	}
	got, err := jcs.CanonizeString(node, tree.Native{})
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"` + "\U00010000" + `":2,"` + "｡" + `":1}`
	if got != expected {
		t.Errorf("CanonizeString() = %q, want %q", got, expected)
	}
}

func TestCanonizeOrderIndependence(t *testing.T) {
	a := `{"a":1,"b":2,"c":3,"d":4}`
	b := `{"d":4,"c":3,"b":2,"a":1}`
	ca, err := jcs.Transform([]byte(a))
	if err != nil {
		t.Fatal(err)
	}
	cb, err := jcs.Transform([]byte(b))
	if err != nil {
		t.Fatal(err)
	}
	if string(ca) != string(cb) {
		t.Errorf("order dependence: %q vs %q", ca, cb)
	}
}

func TestCanonizeUnsupportedNode(t *testing.T) {
	_, err := jcs.CanonizeString(make(chan int), tree.Native{})
	if !errors.Is(err, jcs.ErrUnsupportedNode) {
		t.Errorf("got %v, want ErrUnsupportedNode", err)
	}
	// inside a container, too
	_, err = jcs.CanonizeString([]any{1, make(chan int)}, tree.Native{})
	if !errors.Is(err, jcs.ErrUnsupportedNode) {
		t.Errorf("got %v, want ErrUnsupportedNode", err)
	}
}

type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.n -= len(p)
	if w.n < 0 {
		return 0, errors.New("sink full")
	}
	return len(p), nil
}

func TestCanonizeSinkError(t *testing.T) {
	w := &failWriter{n: 4}
	err := jcs.Canonize([]any{1, 2, 3, 4, 5}, tree.Native{}, w)
	if err == nil || err.Error() != "sink full" {
		t.Errorf("got %v, want sink full", err)
	}
}

func TestCanonizeDeepNesting(t *testing.T) {
	// recursion-free traversal: depth bounded by memory, not stack
	const depth = 100_000
	var node any = []any{}
	for range depth - 1 {
		node = []any{node}
	}
	got, err := jcs.CanonizeString(node, tree.Native{})
	if err != nil {
		t.Fatal(err)
	}
	expected := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	if got != expected {
		t.Errorf("deep nesting mismatch: got %d bytes, want %d", len(got), len(expected))
	}
}
