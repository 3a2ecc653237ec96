package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Delimiters contains the runes which always form single-rune lexemes.
// Whitespace also separates lexemes but is dropped.
const Delimiters = "*/+-^()%="

// TokenKind is the class of a token.
type TokenKind int8

const (
	// TokenInvalid marks a token rejected by whatever produced the stream.
	// The tokenizer never produces it.
	TokenInvalid TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenOp is an operator, infix or forward.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenLiteral is a variable name.
	TokenLiteral
	// TokenEq is the assignment sign.
	TokenEq
)

var tokenKindNames = [...]string{
	TokenInvalid: "Invalid",
	TokenNumber:  "Number",
	TokenOp:      "Op",
	TokenOpen:    "OpenParen",
	TokenClose:   "CloseParen",
	TokenLiteral: "Literal",
	TokenEq:      "Eq",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Token is a classified lexeme.
type Token struct {
	Kind TokenKind
	// Op is the operator of a TokenOp.
	Op OpKind
	// Num is the value of a TokenNumber.
	Num Rational
	// Name is the lower-cased name of a TokenLiteral.
	Name string
	// Pos is the 1-based rune column of the lexeme in its line. Tokens that
	// were not scanned from text, like implicit multiplications, have the
	// position of the token that follows them.
	Pos int
}

// NumToken creates a number token.
func NumToken(r Rational) Token {
	return Token{Kind: TokenNumber, Num: r}
}

// OpToken creates an operator token.
func OpToken(k OpKind) Token {
	return Token{Kind: TokenOp, Op: k}
}

// NameToken creates a literal token. Names are case-insensitive.
func NameToken(name string) Token {
	return Token{Kind: TokenLiteral, Name: strings.ToLower(name)}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return "Number(" + t.Num.String() + ")"
	case TokenOp:
		return "Op(" + t.Op.String() + ")"
	case TokenLiteral:
		return "Literal(" + strconv.Quote(t.Name) + ")"
	default:
		return t.Kind.String()
	}
}

// text is the token as it would be written.
func (t Token) text() string {
	switch t.Kind {
	case TokenNumber:
		return t.Num.String()
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	case TokenLiteral:
		return t.Name
	case TokenEq:
		return "="
	default:
		return "?"
	}
}

// operand returns whether the token is a number or a literal.
func (t Token) operand() bool {
	return t.Kind == TokenNumber || t.Kind == TokenLiteral
}

// DebugToken pairs a token with the lexeme it was classified from.
type DebugToken struct {
	Lexeme string
	Token  Token
}

type lexeme struct {
	text string
	pos  int
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next lexeme from the input. Each delimiter is a lexeme by
// itself; other lexemes run until the next delimiter or whitespace. At the end
// of the input, the error is io.EOF.
func (l *lexer) next() (lexeme, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return lexeme{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case strings.ContainsRune(Delimiters, r):
			return lexeme{text: string(r), pos: l.rune}, nil
		}
		tok := lexeme{pos: l.rune}
		l.buf.WriteRune(r)
		for {
			r, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return lexeme{}, err
			}
			if unicode.IsSpace(r) || strings.ContainsRune(Delimiters, r) {
				l.unreadRune()
				break
			}
			l.buf.WriteRune(r)
		}
		tok.text = l.buf.String()
		return tok, nil
	}
}

// split breaks text into lexemes.
func split(text string) []lexeme {
	var v []lexeme
	scan := lex(strings.NewReader(text))
	for {
		tok, err := scan.next()
		if err != nil {
			// strings.Reader fails only at EOF.
			return v
		}
		v = append(v, tok)
	}
}

// classify converts a lexeme to a token. Matching is case-insensitive.
func classify(lx lexeme) Token {
	s := strings.ToLower(lx.text)
	tok := Token{Kind: TokenOp, Pos: lx.pos}
	switch s {
	case "*":
		tok.Op = Mul
	case "/":
		tok.Op = Div
	case "+":
		tok.Op = Add
	case "-":
		tok.Op = Sub
	case "^":
		tok.Op = Pow
	case "%":
		tok.Op = Mod
	case "sqrt", "rt", "root":
		tok.Op = Root
	case "log", "lg":
		tok.Op = Log
	case "(":
		tok.Kind = TokenOpen
	case ")":
		tok.Kind = TokenClose
	case "=":
		tok.Kind = TokenEq
	default:
		if r, err := ParseRational(s); err == nil {
			tok.Kind = TokenNumber
			tok.Num = r
		} else {
			tok.Kind = TokenLiteral
			tok.Name = s
		}
	}
	return tok
}

// Tokenize splits a line into tokens.
func Tokenize(text string) []Token {
	lx := split(text)
	v := make([]Token, len(lx))
	for i, l := range lx {
		v[i] = classify(l)
	}
	return v
}

// DebugTokenize splits a line into tokens paired with their lexemes.
func DebugTokenize(text string) []DebugToken {
	lx := split(text)
	v := make([]DebugToken, len(lx))
	for i, l := range lx {
		v[i] = DebugToken{Lexeme: l.text, Token: classify(l)}
	}
	return v
}

// Tokens extracts the tokens from debug pairs.
func Tokens(dbg []DebugToken) []Token {
	v := make([]Token, len(dbg))
	for i, d := range dbg {
		v[i] = d.Token
	}
	return v
}

// FormatDebug formats debug pairs one per line as the lexeme followed by the
// token.
func FormatDebug(dbg []DebugToken) string {
	var b strings.Builder
	for i, d := range dbg {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Lexeme)
		b.WriteByte(' ')
		b.WriteString(d.Token.String())
	}
	return b.String()
}
