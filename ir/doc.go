// Package ir provides an in-memory representation of JSON documents
// as a tree of Nodes.
//
// A Node carries its type, parent links, and the data for its type:
// Fields and Values for objects, Values for arrays, and literal data
// for leaves. Number leaves keep the source literal exactly, so a
// document can be canonicalized without losing precision.
//
// Trees can be built from JSON text with FromJSON, from Go values
// with FromMap, FromSlice, and the leaf constructors, and rendered to
// canonical JSON with ToJSON. Tree implements the adapter interface
// of the jcs package, so a *Node can be passed directly to
// jcs.Canonize and jcs.Equal.
//
// Compare defines a total order over Nodes under which two nodes are
// equal exactly when their canonical forms are equal, and Hash
// produces a hash that is stable across equal canonical forms.
package ir
