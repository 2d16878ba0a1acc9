package ir

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/canonform/jcs-format/go-jcs/tree"
)

// Tree adapts *Node trees to the canonicalizer's capability contract:
//
//	err := jcs.Canonize(node, ir.Tree{}, w)
type Tree struct{}

var _ tree.Adapter = Tree{}

func (Tree) Kind(node any) (tree.Kind, error) {
	n, ok := node.(*Node)
	if !ok && node != nil {
		return 0, fmt.Errorf("%w: %T", tree.ErrUnsupportedNode, node)
	}
	if n == nil {
		return tree.Null, nil
	}
	switch n.Type {
	case NullType:
		return tree.Null, nil
	case BoolType:
		if n.Bool {
			return tree.True, nil
		}
		return tree.False, nil
	case NumberType:
		return tree.Number, nil
	case StringType:
		return tree.String, nil
	case ArrayType:
		return tree.Array, nil
	case ObjectType:
		return tree.Object, nil
	}
	return 0, fmt.Errorf("%w: %s", tree.ErrUnsupportedNode, n.Type)
}

func (Tree) String(node any) string {
	return node.(*Node).String
}

func (Tree) Number(node any) string {
	return node.(*Node).NumberLiteral()
}

// NumberLiteral returns the exact decimal literal of a number node.
func (n *Node) NumberLiteral() string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	}
	return n.Number
}

func (Tree) Len(node any) int {
	n := node.(*Node)
	if n.Type == ObjectType {
		return len(n.Fields)
	}
	return len(n.Values)
}

func (Tree) Elements(node any) iter.Seq[any] {
	n := node.(*Node)
	return func(yield func(any) bool) {
		for _, v := range n.Values {
			if !yield(v) {
				return
			}
		}
	}
}

func (Tree) Entries(node any) iter.Seq2[string, any] {
	n := node.(*Node)
	return func(yield func(string, any) bool) {
		for i := range n.Fields {
			if !yield(n.Fields[i].String, n.Values[i]) {
				return
			}
		}
	}
}
