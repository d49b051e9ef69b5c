package splitexpr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one lexed unit of an input line.
type Token struct {
	// Text is the matched source text.
	Text string
	// Kind classifies the token.
	Kind TokenKind
	// Pos is the 1-based rune column of the token's first character.
	Pos int

	// prio ranks the token for root selection. Lower splits earlier.
	prio int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

type TokenKind int8

const (
	// Literal is an integer or decimal number.
	Literal TokenKind = iota + 1
	// Identifier is a variable name.
	Identifier
	// Operator is a binary operator, including assignment.
	Operator
	// Delimiter is an open or close parenthesis.
	Delimiter
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Identifier:
		return "Identifier"
	case Operator:
		return "Operator"
	case Delimiter:
		return "Delimiter"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// operators lists every operator the lexer recognizes. Multi-character
// operators come before their single-character prefixes so that "<=" never
// lexes as "<" followed by "=".
var operators = []string{"<-", "<=", ">=", "!=", "<", ">", "=", "+", "-", "*", "/", "%", "^"}

// Token priorities. Root selection takes the minimum, so assignment and
// comparison bind loosest and a terminal is never chosen over an operator.
const (
	prioCmp   = 0 // <- = != < <= > >=
	prioAdd   = 1 // + -
	prioMul   = 2 // * / %
	prioPow   = 3 // ^
	prioIdent = 999
	prioLit   = 1000
	// prioInside is added to every token strictly inside a span's
	// parenthesized region. It exceeds any terminal priority, so a token
	// outside all parentheses always splits first.
	prioInside = 1 << 12
	// prioParen marks delimiters. It exceeds any boosted priority, so a
	// parenthesis is never chosen as a root.
	prioParen = 1 << 20
)

func priority(kind TokenKind, text string) int {
	switch kind {
	case Identifier:
		return prioIdent
	case Literal:
		return prioLit
	case Delimiter:
		return prioParen
	}
	switch text {
	case "+", "-":
		return prioAdd
	case "*", "/", "%":
		return prioMul
	case "^":
		return prioPow
	}
	return prioCmp
}

// Lex converts a line into its token sequence. At each offset it attempts, in
// order: decimal literal, integer literal, identifier, whitespace (skipped),
// operator, parenthesis. Input matching none of these is a *LexError.
func Lex(line string) ([]Token, error) {
	var toks []Token
	col := 1
	for off := 0; off < len(line); {
		rest := line[off:]
		var (
			text string
			kind TokenKind
		)
		if n := scanDecimal(rest); n > 0 {
			text, kind = rest[:n], Literal
		} else if n := scanDigits(rest); n > 0 {
			text, kind = rest[:n], Literal
		} else if n := scanIdent(rest); n > 0 {
			text, kind = rest[:n], Identifier
		} else if n := scanSpace(rest); n > 0 {
			off += n
			col += utf8.RuneCountInString(rest[:n])
			continue
		} else if op := scanOperator(rest); op != "" {
			text, kind = op, Operator
		} else if rest[0] == '(' || rest[0] == ')' {
			text, kind = rest[:1], Delimiter
		} else {
			return nil, &LexError{Col: col, Text: snippet(rest)}
		}
		toks = append(toks, Token{Text: text, Kind: kind, Pos: col, prio: priority(kind, text)})
		off += len(text)
		// Every token pattern is ASCII, so bytes are columns here.
		col += len(text)
	}
	return toks, nil
}

// scanDigits returns the length of the leading digit run.
func scanDigits(s string) int {
	n := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	return n
}

// scanDecimal matches digits '.' digits. A bare integer or a trailing dot is
// not a decimal.
func scanDecimal(s string) int {
	w := scanDigits(s)
	if w == 0 || w >= len(s) || s[w] != '.' {
		return 0
	}
	f := scanDigits(s[w+1:])
	if f == 0 {
		return 0
	}
	return w + 1 + f
}

// scanIdent matches a letter followed by letters and digits.
func scanIdent(s string) int {
	if len(s) == 0 || !isLetter(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && (isLetter(s[n]) || '0' <= s[n] && s[n] <= '9') {
		n++
	}
	return n
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// scanSpace returns the byte length of leading whitespace.
func scanSpace(s string) int {
	n := 0
	for n < len(s) {
		r, sz := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += sz
	}
	return n
}

// scanOperator returns the longest operator prefixing s, or "".
func scanOperator(s string) string {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

// snippet trims the unmatched remainder to a few runes for the error message.
func snippet(s string) string {
	const max = 8
	n := 0
	for i := range s {
		n++
		if n > max {
			return s[:i]
		}
	}
	return s
}

// LexError indicates input that matches no token pattern. It implements
// InputError.
type LexError struct {
	// Col is the 1-based rune column where matching failed.
	Col int
	// Text is the start of the line's unmatched remainder.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token: "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
