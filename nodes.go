package splitexpr

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree. Terminals hold a Value: a literal's
// parsed value, or a variable's cell. Internal nodes own exactly two
// children; trees are never shared between expressions.
type node struct {
	kind nodeKind

	// name is the literal text or variable name, for rendering.
	name string
	// val is the literal value or the variable's cell. Assignment overwrites
	// a nodeVar's val in place; nothing else mutates a node.
	val Value

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit // terminal, immutable value
	nodeVar // terminal, mutable cell starting at 0

	nodeAssign // store right into left's cell
	nodeEq
	nodeNe
	nodeLt
	nodeLe
	nodeGt
	nodeGe
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow
)

// opText returns the operator spelling for an internal node kind, or "" for
// any other kind.
func (k nodeKind) opText() string {
	switch k {
	case nodeAssign:
		return "<-"
	case nodeEq:
		return "="
	case nodeNe:
		return "!="
	case nodeLt:
		return "<"
	case nodeLe:
		return "<="
	case nodeGt:
		return ">"
	case nodeGe:
		return ">="
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	}
	return ""
}

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeLit:
		return "Lit"
	case nodeVar:
		return "Var"
	}
	if s := k.opText(); s != "" {
		return "Op(" + s + ")"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// opNode maps an operator token to its node kind. Unknown text maps to
// nodeNone.
func opNode(text string) nodeKind {
	switch text {
	case "<-":
		return nodeAssign
	case "=":
		return nodeEq
	case "!=":
		return nodeNe
	case "<":
		return nodeLt
	case "<=":
		return nodeLe
	case ">":
		return nodeGt
	case ">=":
		return nodeGe
	case "+":
		return nodeAdd
	case "-":
		return nodeSub
	case "*":
		return nodeMul
	case "/":
		return nodeDiv
	case "%":
		return nodeMod
	case "^":
		return nodePow
	}
	return nodeNone
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the tree with every node parenthesized, so the grouping the
// builder chose is explicit.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeLit, nodeVar:
		b.WriteString(n.name)
	case nodeNone:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	default:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opText())
		b.WriteByte(' ')
		n.right.fmt(b)
	}
}

// vars records every variable name in the tree.
func (n *node) vars(seen map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		seen[n.name] = true
	}
	n.left.vars(seen)
	n.right.vars(seen)
}
