package splitexpr

import (
	"math"
	"strconv"
)

// Eval walks the expression tree and returns its value. Both operands of
// every operator evaluate left before right; assignment evaluates its right
// side and then stores through the target variable's cell. Evaluating a pure
// arithmetic tree twice gives the same value both times.
func (e *Expr) Eval() (Value, error) {
	return e.n.eval()
}

// EvalString is a shortcut to parse and evaluate one line.
func EvalString(line string) (Value, error) {
	a, err := Parse(line)
	if err != nil {
		return Value{}, err
	}
	return a.Eval()
}

func (n *node) eval() (Value, error) {
	switch n.kind {
	case nodeLit, nodeVar:
		return n.val, nil
	case nodeAssign:
		// The target is recognized by its node kind, never by evaluating it.
		if n.left.kind != nodeVar {
			return Value{}, &LvalueError{Found: n.left.String()}
		}
		v, err := n.right.eval()
		if err != nil {
			return Value{}, err
		}
		n.left.val = v
		return v, nil
	}
	l, err := n.left.eval()
	if err != nil {
		return Value{}, err
	}
	r, err := n.right.eval()
	if err != nil {
		return Value{}, err
	}
	return apply(n.kind, l, r)
}

// apply computes one binary operation. Integer pairs stay integral, except
// that a negative exponent moves ^ to the float path; any float operand
// promotes the whole operation to float.
func apply(k nodeKind, l, r Value) (Value, error) {
	if !l.isNum() || !r.isNum() {
		return Value{}, &OperandError{Op: k.opText()}
	}
	switch k {
	case nodeEq:
		return BoolValue(compare(l, r) == 0), nil
	case nodeNe:
		return BoolValue(compare(l, r) != 0), nil
	case nodeLt:
		return BoolValue(compare(l, r) < 0), nil
	case nodeLe:
		return BoolValue(compare(l, r) <= 0), nil
	case nodeGt:
		return BoolValue(compare(l, r) > 0), nil
	case nodeGe:
		return BoolValue(compare(l, r) >= 0), nil
	}
	if l.kind == Int && r.kind == Int {
		a, b := l.i, r.i
		switch k {
		case nodeAdd:
			return IntValue(a + b), nil
		case nodeSub:
			return IntValue(a - b), nil
		case nodeMul:
			return IntValue(a * b), nil
		case nodeDiv:
			if b == 0 {
				return Value{}, &ZeroDivisionError{Op: "/"}
			}
			return IntValue(floorDiv(a, b)), nil
		case nodeMod:
			if b == 0 {
				return Value{}, &ZeroDivisionError{Op: "%"}
			}
			return IntValue(floorMod(a, b)), nil
		case nodePow:
			if b >= 0 {
				return IntValue(ipow(a, b)), nil
			}
			return FloatValue(fpow(float64(a), float64(b))), nil
		}
	}
	a, b := l.Float(), r.Float()
	switch k {
	case nodeAdd:
		return FloatValue(a + b), nil
	case nodeSub:
		return FloatValue(a - b), nil
	case nodeMul:
		return FloatValue(a * b), nil
	case nodeDiv:
		// IEEE semantics: inf or NaN, never an error.
		return FloatValue(a / b), nil
	case nodeMod:
		return FloatValue(math.Mod(a, b)), nil
	case nodePow:
		return FloatValue(fpow(a, b)), nil
	}
	panic("splitexpr: invalid binary node " + k.String())
}

// LvalueError is an error from an assignment whose left operand is not a
// variable.
type LvalueError struct {
	// Found is the rendering of the non-variable operand.
	Found string
}

func (err *LvalueError) Error() string {
	return "lvalue must be variable, not " + err.Found
}

// ZeroDivisionError is an error from integer division or remainder by zero.
type ZeroDivisionError struct {
	// Op is "/" or "%".
	Op string
}

func (err *ZeroDivisionError) Error() string {
	if err.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

// OperandError is an error from using a comparison result as a number.
type OperandError struct {
	// Op is the operator that rejected its operand.
	Op string
}

func (err *OperandError) Error() string {
	return "operator " + strconv.Quote(err.Op) + " needs numeric operands"
}
