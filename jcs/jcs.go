package jcs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/canonform/jcs-format/go-jcs/tree"
)

// Canonize writes the canonical JSON text of the tree rooted at node to w,
// navigating through ad. The output is valid JSON with no surrounding
// whitespace; canonicalizing canonical output reproduces it byte for byte.
func Canonize(node any, ad tree.Adapter, w io.Writer) error {
	return NewGenerator(w).Node(node, ad)
}

// CanonizeString returns the canonical JSON text of the tree rooted at
// node. The sink is an in-memory buffer, so the only possible errors are
// adapter failures.
func CanonizeString(node any, ad tree.Adapter) (string, error) {
	var b strings.Builder
	if err := Canonize(node, ad, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString is CanonizeString for trees known to be well formed.
func MustString(node any, ad tree.Adapter) string {
	s, err := CanonizeString(node, ad)
	if err != nil {
		panic(err)
	}
	return s
}

// Transform parses raw JSON text and returns its canonical form. Number
// literals are preserved exactly through json.Number on the way in.
func Transform(d []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jcs: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("jcs: trailing data after JSON value")
	}
	var buf bytes.Buffer
	if err := Canonize(v, tree.Native{}, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
