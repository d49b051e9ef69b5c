package splitexpr

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// ValueKind discriminates the scalar types an expression can produce.
type ValueKind int8

const (
	// Int is a signed integer.
	Int ValueKind = iota
	// Float is an IEEE double.
	Float
	// Bool is a comparison result.
	Bool
)

func (k ValueKind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an evaluation result. The zero Value is the integer 0, which is
// also every variable's starting value.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	b    bool
}

func IntValue(v int64) Value { return Value{kind: Int, i: v} }

func FloatValue(v float64) Value { return Value{kind: Float, f: v} }

func BoolValue(v bool) Value { return Value{kind: Bool, b: v} }

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer value. It is meaningful only for Int values.
func (v Value) Int() int64 { return v.i }

// Float returns the value as a float, converting an integer.
func (v Value) Float() float64 {
	if v.kind == Int {
		return float64(v.i)
	}
	return v.f
}

// Bool returns the boolean value. It is meaningful only for Bool values.
func (v Value) Bool() bool { return v.b }

func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	}
	return "Value(" + v.kind.String() + ")"
}

// isNum reports whether a value can be an arithmetic or comparison operand.
func (v Value) isNum() bool {
	return v.kind != Bool
}

// compare orders two numeric values: -1, 0, or 1.
func compare(l, r Value) int {
	if l.kind == Int && r.kind == Int {
		switch {
		case l.i < r.i:
			return -1
		case l.i > r.i:
			return 1
		}
		return 0
	}
	a, b := l.Float(), r.Float()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; the result takes the
// divisor's sign.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// ipow raises an integer base to a non-negative integer exponent by binary
// exponentiation. Overflow wraps.
func ipow(base, exp int64) int64 {
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	return r
}

// fpow is the float exponentiation path. bigfloat gives a correctly rounded
// result for positive finite operands; the remaining cases keep math.Pow's
// IEEE behavior.
func fpow(a, b float64) float64 {
	if a <= 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(b) {
		return math.Pow(a, b)
	}
	x := new(big.Float).SetPrec(53).SetFloat64(a)
	y := new(big.Float).SetPrec(53).SetFloat64(b)
	f, _ := bigfloat.Pow(x, x, y).Float64()
	return f
}
