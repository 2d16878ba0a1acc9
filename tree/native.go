package tree

import (
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
)

// Native adapts values produced by encoding/json decoding: map[string]any,
// []any, string, bool, json.Number, float64 and nil. The integer and float
// scalar types Go callers commonly hold are accepted as well.
//
// Decode with json.Decoder.UseNumber when the exact decimal literal of the
// input must survive; float64 values go through shortest round-trip
// formatting instead.
type Native struct{}

var _ Adapter = Native{}

func (Native) Kind(node any) (Kind, error) {
	switch v := node.(type) {
	case nil:
		return Null, nil
	case bool:
		if v {
			return True, nil
		}
		return False, nil
	case string:
		return String, nil
	case json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return Number, nil
	case []any:
		return Array, nil
	case map[string]any:
		return Object, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
}

func (Native) String(node any) string {
	s, _ := node.(string)
	return s
}

func (Native) Number(node any) string {
	switch v := node.(type) {
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	return ""
}

func (Native) Len(node any) int {
	switch v := node.(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	}
	return 0
}

func (Native) Elements(node any) iter.Seq[any] {
	vs, _ := node.([]any)
	return func(yield func(any) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (Native) Entries(node any) iter.Seq2[string, any] {
	m, _ := node.(map[string]any)
	return func(yield func(string, any) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}
