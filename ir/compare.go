package ir

import (
	"cmp"
	"slices"

	"github.com/canonform/jcs-format/go-jcs/jcs"
)

// Compare returns an integer comparing two nodes under a deterministic
// total order consistent with canonical equality: Compare(a, b) == 0
// exactly when the two trees have the same canonical form. A nil node
// orders like an explicit null. The result will be 0 if a==b, -1 if
// a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return jcs.CompareKeys(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

// compareNumbers orders numbers by their canonical text, so values whose
// canonical forms coincide (1, 1.0, 1.00) compare equal. The order is
// lexicographic over the canonical strings, not numeric.
func compareNumbers(a, b *Node) int {
	return jcs.CompareKeys(canonicalNumber(a), canonicalNumber(b))
}

func canonicalNumber(n *Node) string {
	lit := n.NumberLiteral()
	c, err := jcs.CanonizeNumber(lit)
	if err != nil {
		return lit
	}
	return c
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares entries in canonical key order, key before
// value, so member order in memory never affects the result.
func compareObjects(a, b *Node) int {
	aKVs := sortedKeyVals(a)
	bKVs := sortedKeyVals(b)
	minLen := min(len(aKVs), len(bKVs))

	for i := 0; i < minLen; i++ {
		if c := jcs.CompareKeys(aKVs[i].Key.String, bKVs[i].Key.String); c != 0 {
			return c
		}
		if c := Compare(aKVs[i].Val, bKVs[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKVs), len(bKVs))
}

func sortedKeyVals(n *Node) []KeyVal {
	kvs := make([]KeyVal, len(n.Fields))
	for i := range n.Fields {
		kvs[i] = KeyVal{Key: n.Fields[i], Val: n.Values[i]}
	}
	slices.SortFunc(kvs, func(a, b KeyVal) int {
		return jcs.CompareKeys(a.Key.String, b.Key.String)
	})
	return kvs
}
