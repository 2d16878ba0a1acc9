package jcs

import (
	"fmt"
	"iter"

	"github.com/canonform/jcs-format/go-jcs/debug"
	"github.com/canonform/jcs-format/go-jcs/tree"
)

// Equal reports whether two trees are canonically equal, each side
// navigated through its own adapter; the two sides may use different
// underlying representations. Equality holds exactly when the two
// canonical texts would be identical, but no text is produced: numbers
// compare by canonical form (so 1, 1.0 and 1.00 are equal), strings by raw
// content, objects through sorted keys, arrays positionally. A nil handle
// is equal to an explicit null and to nothing else.
func Equal(a any, aAd tree.Adapter, b any, bAd tree.Adapter) (bool, error) {
	ak, err := aAd.Kind(a)
	if err != nil {
		return false, err
	}
	bk, err := bAd.Kind(b)
	if err != nil {
		return false, err
	}
	if ak != bk {
		return false, nil
	}
	switch ak {
	case tree.Null, tree.True, tree.False:
		return true, nil
	case tree.String:
		return aAd.String(a) == bAd.String(b), nil
	case tree.Number:
		return numbersEqual(aAd.Number(a), bAd.Number(b))
	case tree.Array:
		return arraysEqual(a, aAd, b, bAd)
	case tree.Object:
		return objectsEqual(a, aAd, b, bAd)
	}
	return false, fmt.Errorf("%w: kind %d", ErrUnsupportedNode, ak)
}

func numbersEqual(a, b string) (bool, error) {
	ca, err := CanonizeNumber(a)
	if err != nil {
		return false, err
	}
	cb, err := CanonizeNumber(b)
	if err != nil {
		return false, err
	}
	if debug.Equal() {
		debug.Logf("jcs: equal number %q ~ %q\n", ca, cb)
	}
	return ca == cb, nil
}

func arraysEqual(a any, aAd tree.Adapter, b any, bAd tree.Adapter) (bool, error) {
	if aAd.Len(a) != bAd.Len(b) {
		return false, nil
	}
	aNext, aStop := iter.Pull(aAd.Elements(a))
	defer aStop()
	bNext, bStop := iter.Pull(bAd.Elements(b))
	defer bStop()
	for {
		av, aOK := aNext()
		bv, bOK := bNext()
		if !aOK || !bOK {
			return aOK == bOK, nil
		}
		eq, err := Equal(av, aAd, bv, bAd)
		if err != nil || !eq {
			return false, err
		}
	}
}

func objectsEqual(a any, aAd tree.Adapter, b any, bAd tree.Adapter) (bool, error) {
	if aAd.Len(a) != bAd.Len(b) {
		return false, nil
	}
	aEntries := sortedEntries(a, aAd)
	bEntries := sortedEntries(b, bAd)
	if len(aEntries) != aAd.Len(a) || len(bEntries) != bAd.Len(b) {
		return false, fmt.Errorf("%w: entry iteration disagrees with Len", ErrMalformedTree)
	}
	for i := range aEntries {
		if aEntries[i].key != bEntries[i].key {
			return false, nil
		}
		eq, err := Equal(aEntries[i].val, aAd, bEntries[i].val, bAd)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}
