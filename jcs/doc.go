// Package jcs produces the canonical text form of JSON-like value trees
// and compares trees for canonical equality.
//
// Canonicalization guarantees that one logical JSON value always yields
// the same bytes, independent of input formatting, member order or number
// spelling, which is what digital signatures, content hashes and
// content-addressed storage require.
//
// # Usage
//
//	// Canonicalize raw JSON text
//	out, err := jcs.Transform([]byte(`{"b":1,"a":[2,3]}`))
//	// out == []byte(`{"a":[2,3],"b":1}`)
//
//	// Canonicalize a tree through an adapter
//	err = jcs.Canonize(node, ir.Tree{}, w)
//
//	// Compare trees, possibly across representations
//	eq, err := jcs.Equal(a, ir.Tree{}, b, tree.Native{})
//
// The canonical rules: object members sort by UTF-16 code-unit key order,
// array order is preserved, strings escape only what JSON requires (see
// Escape), and numbers normalize per CanonizeNumber. Trees are navigated
// through the tree.Adapter capability contract, so any object model can
// be plugged in.
//
// All functions here are pure with respect to package state; concurrent
// calls on independent trees need no locking.
//
// # Related Packages
//
//   - github.com/canonform/jcs-format/go-jcs/tree - the adapter contract
//   - github.com/canonform/jcs-format/go-jcs/ir - an in-house node tree
package jcs
