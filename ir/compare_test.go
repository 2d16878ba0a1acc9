package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// nil handles order like explicit null
		{"nil == Null", nil, Null(), 0},
		{"nil < Bool", nil, FromBool(false), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Numbers compare by canonical form
		{"Int == Int", FromInt(1), FromInt(1), 0},
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Int == Literal", FromInt(1), FromNumber("1.00"), 0},
		{"Literal == Literal", FromNumber("1e2"), FromNumber("100"), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Negative < Positive", FromInt(-1), FromInt(1), -1},

		// String Comparison
		{"String == String", FromString("a"), FromString("a"), 0},
		{"String < String", FromString("a"), FromString("b"), -1},
		// surrogate pairs sort below high BMP code units
		{"Supplementary < BMP", FromString("\U00010000"), FromString("｡"), -1},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1},
		{"Object Member Order Irrelevant",
			FromKeyVals([]KeyVal{
				{Key: FromString("b"), Val: FromInt(2)},
				{Key: FromString("a"), Val: FromInt(1)},
			}),
			FromKeyVals([]KeyVal{
				{Key: FromString("a"), Val: FromInt(1)},
				{Key: FromString("b"), Val: FromInt(2)},
			}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareAgreesWithCanonicalForm(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`1`,
		`1.00`,
		`"1"`,
		`[1,2]`,
		`{"a":1,"b":2}`,
		`{"b":2,"a":1}`,
	}
	nodes := make([]*Node, len(docs))
	for i, d := range docs {
		n, err := FromJSON([]byte(d))
		if err != nil {
			t.Fatal(err)
		}
		nodes[i] = n
	}
	for i, a := range nodes {
		for j, b := range nodes {
			ca, err := ToJSON(a)
			if err != nil {
				t.Fatal(err)
			}
			cb, err := ToJSON(b)
			if err != nil {
				t.Fatal(err)
			}
			eq := Compare(a, b) == 0
			if eq != (string(ca) == string(cb)) {
				t.Errorf("Compare(%s, %s)==0 is %v, canonical forms %q, %q",
					docs[i], docs[j], eq, ca, cb)
			}
		}
	}
}
