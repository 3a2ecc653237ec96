package calc

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
)

func TestSanitize(t *testing.T) {
	mul := OpToken(Mul)
	cases := []struct {
		name string
		src  string
		want []Token
	}{
		{"empty", "", []Token{}},
		{"single", "2", []Token{numtok(2)}},
		{"pair", "2 3", []Token{numtok(2), mul, numtok(3)}},
		{"literal", "a 1*123", []Token{NameToken("a"), mul, numtok(1), mul, numtok(123)}},
		{"triple", "2 3 4", []Token{numtok(2), mul, numtok(3), mul, numtok(4)}},
		{"explicit", "2*3", []Token{numtok(2), mul, numtok(3)}},
		{"sqrt", "sqrt 4", []Token{OpToken(Root), numtok(4)}},
		{"log", "log 2 8", []Token{OpToken(Log), numtok(2), numtok(8)}},
		{"sqrt-after", "sqrt 4 9", []Token{OpToken(Root), numtok(4), numtok(9)}},
		{"log-after", "log 2 8 3", []Token{OpToken(Log), numtok(2), numtok(8), mul, numtok(3)}},
		{"parens", "(2) 3", []Token{{Kind: TokenOpen}, numtok(2), {Kind: TokenClose}, numtok(3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Sanitize(Tokenize(c.src))
			if err != nil {
				t.Fatalf("sanitizing %q: %v", c.src, err)
			}
			if diff := pretty.Diff(c.want, nopos(got)); len(diff) != 0 {
				t.Errorf("sanitizing %q: %v", c.src, diff)
			}
		})
	}
}

func TestSanitizePositions(t *testing.T) {
	got, err := Sanitize(Tokenize("2  x"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("wrong number of tokens: %v", got)
	}
	if got[1].Pos != got[2].Pos {
		t.Errorf("implicit multiplication at %d, want the position of its right operand %d", got[1].Pos, got[2].Pos)
	}
}

func TestSanitizeInvalid(t *testing.T) {
	single := []Token{{Kind: TokenInvalid, Pos: 1}}
	got, err := Sanitize(single)
	if err != nil {
		t.Errorf("single invalid token: %v", err)
	}
	if len(got) != 1 || got[0].Kind != TokenInvalid {
		t.Errorf("single invalid token changed to %v", got)
	}

	_, err = Sanitize([]Token{numtok(1), {Kind: TokenInvalid, Pos: 3}})
	var serr *StreamError
	if !errors.As(err, &serr) {
		t.Fatalf("want *StreamError, got %#v", err)
	}
	if serr.Pos() != 3 {
		t.Errorf("want error at 3, got %d", serr.Pos())
	}
}

func TestSanitizeKeepsInput(t *testing.T) {
	toks := Tokenize("1 2 3")
	orig := append([]Token(nil), toks...)
	if _, err := Sanitize(toks); err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(orig, toks); len(diff) != 0 {
		t.Errorf("input modified: %v", diff)
	}
}
