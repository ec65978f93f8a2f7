/*
File    : golox/values/values_test.go
*/
package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsTruthy verifies the truthiness projection: nil and false are
// falsy, everything else is truthy (including 0 and "").
func TestIsTruthy(t *testing.T) {
	tests := []struct {
		Value    Value
		Expected bool
	}{
		{&Nil{}, false},
		{&Boolean{Value: false}, false},
		{&Boolean{Value: true}, true},
		{&Number{Value: 0}, true},
		{&Number{Value: -1.5}, true},
		{&String{Value: ""}, true},
		{&String{Value: "false"}, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, IsTruthy(test.Value), "IsTruthy(%s)", test.Value.ToObject())
	}
}

// TestEquals verifies Lox equality: structural within a variant, false
// across variants, IEEE semantics for numbers.
func TestEquals(t *testing.T) {
	tests := []struct {
		Left     Value
		Right    Value
		Expected bool
	}{
		{&Nil{}, &Nil{}, true},
		{&Boolean{Value: true}, &Boolean{Value: true}, true},
		{&Boolean{Value: true}, &Boolean{Value: false}, false},
		{&Number{Value: 2}, &Number{Value: 2}, true},
		{&Number{Value: 2}, &Number{Value: 3}, false},
		{&String{Value: "a"}, &String{Value: "a"}, true},
		{&String{Value: "a"}, &String{Value: "b"}, false},

		// Cross-variant comparison is false, never an error
		{&Nil{}, &Boolean{Value: false}, false},
		{&Number{Value: 0}, &String{Value: "0"}, false},
		{&Boolean{Value: true}, &Number{Value: 1}, false},
		{&String{Value: ""}, &Nil{}, false},

		// IEEE: NaN is not equal to itself
		{&Number{Value: math.NaN()}, &Number{Value: math.NaN()}, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, Equals(test.Left, test.Right),
			"Equals(%s, %s)", test.Left.ToObject(), test.Right.ToObject())
	}
}

// TestEquals_Reflexive verifies reflexivity for non-NaN values.
func TestEquals_Reflexive(t *testing.T) {
	vals := []Value{
		&Nil{},
		&Boolean{Value: true},
		&Boolean{Value: false},
		&Number{Value: 0},
		&Number{Value: math.Inf(1)},
		&String{Value: "x"},
	}
	for _, v := range vals {
		assert.True(t, Equals(v, v), "Equals must be reflexive for %s", v.ToObject())
	}
}

// TestToString verifies display forms: computed numbers print without a
// trailing ".0", strings print raw, booleans and nil print their names.
func TestToString(t *testing.T) {
	tests := []struct {
		Value    Value
		Expected string
	}{
		{&Nil{}, "nil"},
		{&Boolean{Value: true}, "true"},
		{&Boolean{Value: false}, "false"},
		{&Number{Value: 6}, "6"},
		{&Number{Value: 2.5}, "2.5"},
		{&Number{Value: -9}, "-9"},
		{&Number{Value: 0.000001}, "0.000001"},
		{&String{Value: "foobar"}, "foobar"},
		{&String{Value: ""}, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, test.Value.ToString())
	}
}

// TestGetType verifies the type tags.
func TestGetType(t *testing.T) {
	assert.Equal(t, NilType, (&Nil{}).GetType())
	assert.Equal(t, BooleanType, (&Boolean{}).GetType())
	assert.Equal(t, NumberType, (&Number{}).GetType())
	assert.Equal(t, StringType, (&String{}).GetType())
}
