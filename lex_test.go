package splitexpr

import (
	"reflect"
	"testing"
)

func tok(text string, kind TokenKind, pos int) Token {
	return Token{Text: text, Kind: kind, Pos: pos, prio: priority(kind, text)}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src   string
		want  []Token
		errAt int // column of the lex error, 0 for none
	}{
		// spaces
		{"", nil, 0},
		{" \t \r ", nil, 0},
		// numbers
		{"0", []Token{tok("0", Literal, 1)}, 0},
		{"9876543210", []Token{tok("9876543210", Literal, 1)}, 0},
		{"1 0", []Token{tok("1", Literal, 1), tok("0", Literal, 3)}, 0},
		{"1.5", []Token{tok("1.5", Literal, 1)}, 0},
		{"1.", nil, 2},
		{".5", nil, 1},
		{"1.2.3", nil, 4},
		{"1a", []Token{tok("1", Literal, 1), tok("a", Identifier, 2)}, 0},
		// identifiers
		{"x", []Token{tok("x", Identifier, 1)}, 0},
		{"abc123", []Token{tok("abc123", Identifier, 1)}, 0},
		{"A1z", []Token{tok("A1z", Identifier, 1)}, 0},
		// operators, multi-character before their prefixes
		{"a<-1", []Token{tok("a", Identifier, 1), tok("<-", Operator, 2), tok("1", Literal, 4)}, 0},
		{"a<=1", []Token{tok("a", Identifier, 1), tok("<=", Operator, 2), tok("1", Literal, 4)}, 0},
		{"a<1", []Token{tok("a", Identifier, 1), tok("<", Operator, 2), tok("1", Literal, 3)}, 0},
		{"a>=1", []Token{tok("a", Identifier, 1), tok(">=", Operator, 2), tok("1", Literal, 4)}, 0},
		{"1!=2", []Token{tok("1", Literal, 1), tok("!=", Operator, 2), tok("2", Literal, 4)}, 0},
		{"1=2", []Token{tok("1", Literal, 1), tok("=", Operator, 2), tok("2", Literal, 3)}, 0},
		{"a<--1", []Token{tok("a", Identifier, 1), tok("<-", Operator, 2), tok("-", Operator, 4), tok("1", Literal, 5)}, 0},
		{"5%2", []Token{tok("5", Literal, 1), tok("%", Operator, 2), tok("2", Literal, 3)}, 0},
		{"2^3", []Token{tok("2", Literal, 1), tok("^", Operator, 2), tok("3", Literal, 3)}, 0},
		{"1 + 2 * 3", []Token{tok("1", Literal, 1), tok("+", Operator, 3), tok("2", Literal, 5), tok("*", Operator, 7), tok("3", Literal, 9)}, 0},
		// parentheses
		{"(1)", []Token{tok("(", Delimiter, 1), tok("1", Literal, 2), tok(")", Delimiter, 3)}, 0},
		{"()", []Token{tok("(", Delimiter, 1), tok(")", Delimiter, 2)}, 0},
		// unmatchable input
		{"@", nil, 1},
		{"1@2", nil, 2},
		{"a !", nil, 3},
		{"π", nil, 1},
	}
	for _, c := range cases {
		toks, err := Lex(c.src)
		if c.errAt != 0 {
			lerr, ok := err.(*LexError)
			if !ok {
				t.Errorf("lexing %q: want *LexError, got %v (%T)", c.src, err, err)
				continue
			}
			if lerr.Col != c.errAt {
				t.Errorf("lexing %q: error at column %d, want %d", c.src, lerr.Col, c.errAt)
			}
			continue
		}
		if err != nil {
			t.Errorf("lexing %q: unexpected error %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(toks, c.want) {
			t.Errorf("lexing %q: want %v, got %v", c.src, c.want, toks)
		}
	}
}

func TestPriorities(t *testing.T) {
	ops := map[string]int{
		"<-": prioCmp, "=": prioCmp, "!=": prioCmp,
		"<": prioCmp, "<=": prioCmp, ">": prioCmp, ">=": prioCmp,
		"+": prioAdd, "-": prioAdd,
		"*": prioMul, "/": prioMul, "%": prioMul,
		"^": prioPow,
	}
	for _, op := range operators {
		want, ok := ops[op]
		if !ok {
			t.Errorf("operator %q has no priority case", op)
			continue
		}
		if got := priority(Operator, op); got != want {
			t.Errorf("operator %q has priority %d, want %d", op, got, want)
		}
	}
	if priority(Identifier, "x") <= priority(Operator, "^") {
		t.Error("identifiers must outrank every operator")
	}
	if priority(Literal, "1") <= priority(Identifier, "x") {
		t.Error("literals must outrank identifiers")
	}
	if priority(Delimiter, "(") <= priority(Literal, "1")+prioInside {
		t.Error("delimiters must outrank even boosted literals")
	}
}

func TestLexErrorSnippet(t *testing.T) {
	_, err := Lex("1 @@@@@@@@@@@@@@@@")
	lerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %v (%T)", err, err)
	}
	if lerr.Text != "@@@@@@@@" {
		t.Errorf("snippet %q, want a trimmed run of @", lerr.Text)
	}
	if lerr.Pos() != 3 {
		t.Errorf("error position %d, want 3", lerr.Pos())
	}
}
