package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// hashSeed is fixed per process so hashes of equal trees agree across
// calls within one run. Hashes are not stable across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node's canonical form: trees with
// the same canonical text hash identically, regardless of member order
// or number spelling. Useful for caching and deduplication.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		h.WriteString(canonicalNumber(n))
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// entries contribute in canonical key order; keys are
		// length-prefixed so entry boundaries stay unambiguous
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Fields)))
		h.Write(b[:])
		for _, kv := range sortedKeyVals(n) {
			binary.LittleEndian.PutUint64(b[:], uint64(len(kv.Key.String)))
			h.Write(b[:])
			h.WriteString(kv.Key.String)
			binary.LittleEndian.PutUint64(b[:], kv.Val.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
