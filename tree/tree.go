// Package tree defines the capability contract the canonicalizer requires
// from a tree representation.
//
// Any JSON-like object model can be canonicalized by implementing Adapter
// for it. The jcs package consumes adapters and never depends on a concrete
// model; the ir package provides one implementation for its own node tree,
// and Native (in this package) provides one for values produced by
// encoding/json.
//
// # Related Packages
//
//   - github.com/canonform/jcs-format/go-jcs/jcs - canonical text generation
//   - github.com/canonform/jcs-format/go-jcs/ir - an in-house node tree
package tree

import (
	"fmt"
	"iter"
)

// Kind classifies a node into the closed set of JSON value variants.
type Kind int

const (
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Null:   "Null",
		False:  "False",
		True:   "True",
		Number: "Number",
		String: "String",
		Array:  "Array",
		Object: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   Null,
		"False":  False,
		"True":   True,
		"Number": Number,
		"String": String,
		"Array":  Array,
		"Object": Object,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsLeaf reports whether nodes of kind k have no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case Array, Object:
		return false
	default:
		return true
	}
}

// Adapter provides read access to one tree representation.
//
// Nodes are passed as opaque handles; only the adapter that produced the
// classification may interpret them. All methods must be deterministic and
// side-effect-free for the duration of a canonicalization or comparison
// call. Methods other than Kind are only called on handles whose Kind
// matches (String for String nodes, and so on) and may return zero values
// otherwise.
type Adapter interface {
	// Kind classifies node. A nil handle classifies as Null. Handles
	// outside the representation yield an error wrapping
	// ErrUnsupportedNode.
	Kind(node any) (Kind, error)

	// String returns the raw, unescaped content of a String node.
	String(node any) string

	// Number returns the exact decimal literal of a Number node, e.g.
	// "1.00" or "1e21". No precision may be lost in producing it.
	Number(node any) string

	// Len returns the element count of an Array node or the entry count
	// of an Object node.
	Len(node any) int

	// Elements iterates an Array node's elements in order.
	Elements(node any) iter.Seq[any]

	// Entries iterates an Object node's (key, value) entries. Order is
	// not significant; the canonicalizer sorts.
	Entries(node any) iter.Seq2[string, any]
}
