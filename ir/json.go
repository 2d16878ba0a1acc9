package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/canonform/jcs-format/go-jcs/jcs"
)

// FromJSON parses JSON text into a Node tree. Number literals are kept
// exact: integer literals that fit int64 land in Int64, everything else
// is retained verbatim in Number, so no precision is lost en route to
// canonicalization.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return fromAny(v)
}

func fromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		lit := x.String()
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return FromInt(i), nil
		}
		return FromNumber(lit), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: cannot build node from %T", ErrParse, v)
}

// ToJSON returns the canonical JSON encoding of node.
func ToJSON(node *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := jcs.Canonize(node, Tree{}, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
