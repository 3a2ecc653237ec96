package calc

import (
	"math"
	"testing"

	"github.com/kr/pretty"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		src  string
		want []lexeme
	}{
		{"", nil},
		{" \t ", nil},
		{"a b", []lexeme{{"a", 1}, {"b", 3}}},
		{"a/b", []lexeme{{"a", 1}, {"/", 2}, {"b", 3}}},
		{"a*b", []lexeme{{"a", 1}, {"*", 2}, {"b", 3}}},
		{"a/ b", []lexeme{{"a", 1}, {"/", 2}, {"b", 4}}},
		{"a/ b*/////", []lexeme{{"a", 1}, {"/", 2}, {"b", 4}, {"*", 5}, {"/", 6}, {"/", 7}, {"/", 8}, {"/", 9}, {"/", 10}}},
		{"log a b", []lexeme{{"log", 1}, {"a", 5}, {"b", 7}}},
		{"sqrt a ^ b", []lexeme{{"sqrt", 1}, {"a", 6}, {"^", 8}, {"b", 10}}},
		{"(1+2)%3", []lexeme{{"(", 1}, {"1", 2}, {"+", 3}, {"2", 4}, {")", 5}, {"%", 6}, {"3", 7}}},
		{"x=-1.5", []lexeme{{"x", 1}, {"=", 2}, {"-", 3}, {"1.5", 4}}},
		{"π²+1", []lexeme{{"π²", 1}, {"+", 3}, {"1", 4}}},
	}
	for _, c := range cases {
		got := split(c.src)
		if diff := pretty.Diff(c.want, got); len(diff) != 0 {
			t.Errorf("splitting %q: %v", c.src, diff)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want Token
	}{
		{"*", OpToken(Mul)},
		{"/", OpToken(Div)},
		{"+", OpToken(Add)},
		{"-", OpToken(Sub)},
		{"^", OpToken(Pow)},
		{"%", OpToken(Mod)},
		{"sqrt", OpToken(Root)},
		{"SQRT", OpToken(Root)},
		{"rt", OpToken(Root)},
		{"Root", OpToken(Root)},
		{"log", OpToken(Log)},
		{"LG", OpToken(Log)},
		{"(", Token{Kind: TokenOpen}},
		{")", Token{Kind: TokenClose}},
		{"=", Token{Kind: TokenEq}},
		{"123", NumToken(NewRational(123, 1))},
		{"123.0", NumToken(NewRational(123, 1))},
		{".01", NumToken(NewRational(1, 100))},
		{"2.5E1", NumToken(NewRational(25, 1))},
		{"x", NameToken("x")},
		{"Abc", NameToken("abc")},
		{"1e", NameToken("1e")},
		{"1E400", NumToken(Rational{math.Inf(1), 1})},
		{"0x10", NameToken("0x10")},
	}
	for _, c := range cases {
		got := classify(lexeme{text: c.text})
		if got != c.want {
			t.Errorf("classifying %q: want %v, got %v", c.text, c.want, got)
		}
	}
}

// nopos clears token positions for comparison.
func nopos(toks []Token) []Token {
	if toks == nil {
		return nil
	}
	v := make([]Token, len(toks))
	for i, tok := range toks {
		tok.Pos = 0
		v[i] = tok
	}
	return v
}

func numtok(x float64) Token {
	return NumToken(FromFloat(x))
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
	}{
		{"1/123", []Token{numtok(1), OpToken(Div), numtok(123)}},
		{"1 123", []Token{numtok(1), numtok(123)}},
		{"1*123", []Token{numtok(1), OpToken(Mul), numtok(123)}},
		{"1*123/321", []Token{numtok(1), OpToken(Mul), numtok(123), OpToken(Div), numtok(321)}},
		{"a 1*123", []Token{NameToken("a"), numtok(1), OpToken(Mul), numtok(123)}},
		{"A = 0.5", []Token{NameToken("a"), {Kind: TokenEq}, numtok(0.5)}},
		{"log 2 (8)", []Token{OpToken(Log), numtok(2), {Kind: TokenOpen}, numtok(8), {Kind: TokenClose}}},
	}
	for _, c := range cases {
		got := nopos(Tokenize(c.src))
		if diff := pretty.Diff(c.want, got); len(diff) != 0 {
			t.Errorf("tokenizing %q: %v", c.src, diff)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks := Tokenize("12 +  x")
	want := []int{1, 4, 7}
	if len(toks) != len(want) {
		t.Fatalf("wrong number of tokens: %v", toks)
	}
	for i, tok := range toks {
		if tok.Pos != want[i] {
			t.Errorf("token %v: want pos %d, got %d", tok, want[i], tok.Pos)
		}
	}
}

func TestTokenizeNeverInvalid(t *testing.T) {
	srcs := []string{"", "$", "1..2", "#", "((", "a=b=c", "∞ ÷ 2", "\x00", "1e-3"}
	for _, src := range srcs {
		for _, tok := range Tokenize(src) {
			if tok.Kind == TokenInvalid {
				t.Errorf("tokenizing %q produced an invalid token", src)
			}
		}
	}
}

func TestDebugTokenize(t *testing.T) {
	got := DebugTokenize("SQRT 4")
	want := []DebugToken{
		{Lexeme: "SQRT", Token: Token{Kind: TokenOp, Op: Root, Pos: 1}},
		{Lexeme: "4", Token: Token{Kind: TokenNumber, Num: NewRational(4, 1), Pos: 6}},
	}
	if diff := pretty.Diff(want, got); len(diff) != 0 {
		t.Errorf("debug tokens: %v", diff)
	}
	if diff := pretty.Diff(Tokenize("SQRT 4"), Tokens(got)); len(diff) != 0 {
		t.Errorf("debug tokens differ from tokens: %v", diff)
	}
	const echo = "SQRT Op(sqrt)\n4 Number(4)"
	if s := FormatDebug(got); s != echo {
		t.Errorf("debug echo: want %q, got %q", echo, s)
	}
}

func TestPreTokenize(t *testing.T) {
	cases := []struct {
		line string
		text string
		opts Options
	}{
		{"1+1", "1+1", Options{}},
		{"d#1+1", "1+1", Options{Debug: true}},
		{"f#1/3", "1/3", Options{AsFloat: true}},
		{"fd#2", "2", Options{Debug: true, AsFloat: true}},
		{"dd#2", "2", Options{Debug: true}},
		{"x#3", "3", Options{}},
		{"#5", "5", Options{}},
		{"f#1#2", "1#2", Options{AsFloat: true}},
		{"", "", Options{}},
	}
	for _, c := range cases {
		text, opts := PreTokenize(c.line)
		if text != c.text || opts != c.opts {
			t.Errorf("pre-tokenizing %q: want %q %+v, got %q %+v", c.line, c.text, c.opts, text, opts)
		}
	}
}

func TestOpKindInfo(t *testing.T) {
	cases := []struct {
		op      OpKind
		prec    int
		arity   int
		fwd     bool
		trailer int
	}{
		{Add, 1, 2, false, 1},
		{Sub, 1, 2, false, 1},
		{Mul, 2, 2, false, 1},
		{Div, 2, 2, false, 1},
		{Mod, 2, 2, false, 1},
		{Pow, 3, 2, false, 1},
		{Root, 3, 1, true, 1},
		{Log, 3, 2, true, 2},
	}
	for _, c := range cases {
		if c.op.Prec() != c.prec || c.op.Arity() != c.arity || c.op.Forward() != c.fwd || c.op.Trailing() != c.trailer {
			t.Errorf("%v: want %d %d %t %d, got %d %d %t %d", c.op, c.prec, c.arity, c.fwd, c.trailer,
				c.op.Prec(), c.op.Arity(), c.op.Forward(), c.op.Trailing())
		}
	}
}

func TestInfixPrecsFollowRanks(t *testing.T) {
	infixes := []OpKind{Add, Sub, Mul, Div, Mod, Pow}
	for _, a := range infixes {
		for _, b := range infixes {
			pa, pb := binop(a), binop(b)
			if (a.Prec() < b.Prec()) != (pa.prec < pb.prec) {
				t.Errorf("%v and %v: ranks %d %d disagree with parse precs %d %d", a, b, a.Prec(), b.Prec(), pa.prec, pb.prec)
			}
		}
	}
	if p := binop(Mul).prec; p != termprec.prec {
		t.Errorf("juxtaposition has prec %d but * has prec %d", termprec.prec, p)
	}
}
