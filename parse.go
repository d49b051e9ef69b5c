package splitexpr

import (
	"sort"
	"strconv"
	"strings"
)

// Expr is a built expression tree, ready to evaluate.
type Expr struct {
	n *node
}

// Parse lexes and builds one line.
func Parse(line string) (*Expr, error) {
	toks, err := Lex(line)
	if err != nil {
		return nil, err
	}
	return Build(toks)
}

// Build constructs the expression tree for a full token sequence.
func Build(tokens []Token) (*Expr, error) {
	n, err := build(tokens)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// build recursively splits a token span at its root: the token with the
// minimum effective priority, rightmost on ties. Every recursion works on a
// subslice of the one token slice Lex produced; no level copies tokens.
func build(toks []Token) (*node, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	if outerPair(toks) {
		if len(toks) == 2 {
			return nil, &EmptyExpressionError{Col: toks[1].Pos}
		}
		return build(toks[1 : len(toks)-1])
	}
	if len(toks) == 1 {
		return terminal(toks[0])
	}
	root, err := splitAt(toks)
	if err != nil {
		return nil, err
	}
	k := nodeNone
	if toks[root].Kind == Operator {
		k = opNode(toks[root].Text)
	}
	if k == nodeNone {
		return nil, &SyntaxError{Col: toks[root].Pos, Text: toks[root].Text}
	}
	if root == 0 || root == len(toks)-1 {
		return nil, &EmptyOperandError{Col: toks[root].Pos, Op: toks[root].Text}
	}
	left, err := build(toks[:root])
	if err != nil {
		return nil, err
	}
	right, err := build(toks[root+1:])
	if err != nil {
		return nil, err
	}
	return &node{kind: k, left: left, right: right}, nil
}

// terminal builds a leaf from a single-token span. An identifier becomes a
// fresh variable cell holding 0; occurrences are never shared, so assigning
// one "a" leaves every other "a" untouched.
func terminal(tok Token) (*node, error) {
	switch tok.Kind {
	case Literal:
		if strings.ContainsRune(tok.Text, '.') {
			f, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return nil, &SyntaxError{Col: tok.Pos, Text: tok.Text}
			}
			return &node{kind: nodeLit, name: tok.Text, val: FloatValue(f)}, nil
		}
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Col: tok.Pos, Text: tok.Text}
		}
		return &node{kind: nodeLit, name: tok.Text, val: IntValue(i)}, nil
	case Identifier:
		return &node{kind: nodeVar, name: tok.Text, val: IntValue(0)}, nil
	}
	return nil, &SyntaxError{Col: tok.Pos, Text: tok.Text}
}

// outerPair reports whether the span's first and last tokens are parentheses
// that pair with each other, i.e. one pair enclosing the whole span.
func outerPair(toks []Token) bool {
	if len(toks) < 2 {
		return false
	}
	first, last := toks[0], toks[len(toks)-1]
	if first.Kind != Delimiter || first.Text != "(" {
		return false
	}
	if last.Kind != Delimiter || last.Text != ")" {
		return false
	}
	depth := 0
	for i, t := range toks {
		if t.Kind != Delimiter {
			continue
		}
		if t.Text == "(" {
			depth++
			continue
		}
		depth--
		if depth == 0 && i < len(toks)-1 {
			// The first parenthesis closes before the end of the span.
			return false
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

// splitAt selects the root of a multi-token span. Tokens strictly between the
// span's leftmost ( and rightmost ) get prioInside added, so a token outside
// every parenthesis always wins over one inside; the region needs no
// pair-by-pair matching. The rightmost minimum wins ties, which groups
// equal-priority chains to the left.
func splitAt(toks []Token) (int, error) {
	lparen, rparen := -1, -1
	for i, t := range toks {
		if t.Kind != Delimiter {
			continue
		}
		if t.Text == "(" {
			if lparen < 0 {
				lparen = i
			}
		} else {
			rparen = i
		}
	}
	switch {
	case lparen < 0 && rparen < 0:
		// No parentheses; raw priorities.
	case lparen >= 0 && rparen >= 0 && lparen < rparen:
		// A parenthesized region to protect.
	case lparen >= 0 && rparen < 0:
		return 0, &ParenError{Col: toks[lparen].Pos, Open: "("}
	case rparen >= 0 && lparen < 0:
		return 0, &ParenError{Col: toks[rparen].Pos, Close: ")"}
	default:
		return 0, &ParenError{Col: toks[rparen].Pos, Open: "(", Close: ")"}
	}
	root := -1
	min := int(^uint(0) >> 1)
	for i, t := range toks {
		p := t.prio
		if lparen >= 0 && lparen < i && i < rparen {
			p += prioInside
		}
		if p <= min {
			root, min = i, p
		}
	}
	return root, nil
}

// Vars returns the sorted set of identifier names appearing in the
// expression. Occurrences are independent cells, so a name may repeat in the
// tree but not here.
func (e *Expr) Vars() []string {
	seen := make(map[string]bool)
	e.n.vars(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String renders the parse tree with explicit grouping.
func (e *Expr) String() string {
	return e.n.String()
}
