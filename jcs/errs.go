package jcs

import (
	"errors"

	"github.com/canonform/jcs-format/go-jcs/tree"
)

var (
	// ErrMalformedTree reports an adapter whose entry iteration
	// disagrees with its reported Len. It indicates a defective
	// adapter, not recoverable input.
	ErrMalformedTree = errors.New("malformed tree")

	// ErrNumber reports a value that is not a decimal literal.
	ErrNumber = errors.New("bad number")

	ErrUnsupportedNode = tree.ErrUnsupportedNode
)
