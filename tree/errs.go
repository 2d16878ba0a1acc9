package tree

import "errors"

// ErrUnsupportedNode reports a handle or node type outside the JSON data
// model, indicating a defective adapter or a value the caller should not
// have passed in.
var ErrUnsupportedNode = errors.New("unsupported node")
