package calc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Rational is a fraction p/q with float64 numerator and denominator. Values
// produced by this package are reduced: q > 0 and gcd(|p|, q) == 1 as far as
// float64 precision permits. A denominator of zero denotes an undefined value,
// which results from division by zero and propagates through arithmetic
// instead of failing. The zero value is undefined; use Zero for 0.
//
// Rational values are immutable and may be compared with == once reduced.
type Rational struct {
	p, q float64
}

var (
	// Zero is the rational 0/1.
	Zero = Rational{0, 1}
	// One is the rational 1/1.
	One = Rational{1, 1}
	// Undefined is the canonical undefined value, 0/0.
	Undefined = Rational{0, 0}

	half = Rational{1, 2}
)

// kernelPrec is the precision in bits of powers and logarithms before they are
// rounded back to float64.
const kernelPrec = 128

// NewRational creates the reduced fraction p/q.
func NewRational(p, q float64) Rational {
	return Rational{p, q}.reduce()
}

// FromFloat creates the fraction represented by the shortest decimal
// expansion of f. E.g., FromFloat(3.4) is 17/5 rather than the binary value
// nearest 3.4 scaled by a power of two.
func FromFloat(f float64) Rational {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Rational{f, 1}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	k := strings.IndexByte(s, '.')
	if k < 0 {
		return Rational{f, 1}.reduce()
	}
	q := math.Pow10(len(s) - k - 1)
	p, err := strconv.ParseFloat(s[:k]+s[k+1:], 64)
	if err != nil || math.IsInf(q, 0) {
		// Too many digits to scale; keep the binary value.
		return Rational{f, 1}.reduce()
	}
	return Rational{p, q}.reduce()
}

// ParseRational parses a decimal floating-point literal, optionally in
// exponent notation, into the exact fraction its digits denote.
// Hexadecimal literals are rejected. Literals out of float64 range become
// ±inf or 0.
func ParseRational(text string) (Rational, error) {
	if strings.ContainsAny(text, "xX_") {
		return Undefined, &strconv.NumError{Func: "ParseRational", Num: text, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Undefined, err
	}
	return FromFloat(f), nil
}

// gcd computes the greatest common divisor of |x| and |y| with Euclid's
// algorithm on floats. Non-finite arguments have a gcd of 1.
func gcd(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return 1
	}
	for y > 0 {
		x, y = y, math.Mod(x, y)
	}
	return x
}

func lcm(x, y float64) float64 {
	return x / gcd(x, y) * y
}

// reduce normalizes r to lowest terms with a positive denominator.
func (r Rational) reduce() Rational {
	p, q := r.p, r.q
	if q == 0 || math.IsNaN(q) {
		return Undefined
	}
	if math.Signbit(q) {
		p, q = -p, -q
	}
	if p == 0 {
		// Also drops the sign of -0.
		return Zero
	}
	if g := gcd(p, q); g != 0 && g != 1 {
		rp, rq := p/g, q/g
		if !math.IsInf(rp, 0) && !math.IsInf(rq, 0) {
			p, q = rp, rq
		}
	}
	return Rational{p, q}
}

// IsUndefined returns whether r has a zero denominator.
func (r Rational) IsUndefined() bool {
	return r.q == 0
}

// Num returns the numerator of r.
func (r Rational) Num() float64 {
	return r.p
}

// Denom returns the denominator of r.
func (r Rational) Denom() float64 {
	return r.q
}

// Float64 returns p/q. Undefined values are NaN.
func (r Rational) Float64() float64 {
	if r.q == 0 {
		return math.NaN()
	}
	return r.p / r.q
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	if r.IsUndefined() || s.IsUndefined() {
		return Undefined
	}
	l := lcm(r.q, s.q)
	return Rational{r.p*(l/r.q) + s.p*(l/s.q), l}.reduce()
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	if r.IsUndefined() || s.IsUndefined() {
		return Undefined
	}
	l := lcm(r.q, s.q)
	return Rational{r.p*(l/r.q) - s.p*(l/s.q), l}.reduce()
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	return Rational{r.p * s.p, r.q * s.q}.reduce()
}

// Quo returns r / s. Division by zero is undefined.
func (r Rational) Quo(s Rational) Rational {
	if r.IsUndefined() || s.IsUndefined() {
		return Undefined
	}
	return Rational{r.p * s.q, r.q * s.p}.reduce()
}

// Mod returns the remainder of r / s truncated toward zero, so the result
// has the sign of r. Modulo zero is undefined.
func (r Rational) Mod(s Rational) Rational {
	if r.IsUndefined() || s.IsUndefined() || s.p == 0 {
		return Undefined
	}
	l := lcm(r.q, s.q)
	return Rational{math.Mod(r.p*(l/r.q), s.p*(l/s.q)), l}.reduce()
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{-r.p, r.q}.reduce()
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{math.Abs(r.p), math.Abs(r.q)}.reduce()
}

// Pow raises the numerator and denominator of r to the power x, which is
// treated as a float. Fractional exponents take roots, so the result is
// exact only when the roots are.
func (r Rational) Pow(x Rational) Rational {
	if r.IsUndefined() || x.IsUndefined() {
		return Undefined
	}
	e := x.Float64()
	return Rational{pow(r.p, e), pow(r.q, e)}.reduce()
}

// Sqrt returns r^(1/2).
func (r Rational) Sqrt() Rational {
	return r.Pow(half)
}

// Log returns the logarithm of r in the given base. The result always has a
// denominator of 1 before reduction, so exact fraction semantics end at a
// logarithm.
func (r Rational) Log(base Rational) Rational {
	if r.IsUndefined() || base.IsUndefined() {
		return Undefined
	}
	return Rational{logratio(r.p, r.q, base.Float64()), 1}.reduce()
}

// Equal returns whether r and s denote the same fraction.
func (r Rational) Equal(s Rational) bool {
	return r.reduce() == s.reduce()
}

// Cmp compares r and s, returning -1, 0, or +1. Undefined values are
// unordered and compare as 0.
func (r Rational) Cmp(s Rational) int {
	if r.IsUndefined() || s.IsUndefined() {
		return 0
	}
	a, b := r.p*s.q, s.p*r.q
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats r as "p" if its denominator is 1, "p/q" otherwise, or
// "undefined".
func (r Rational) String() string {
	r = r.reduce()
	switch r.q {
	case 0:
		return "undefined"
	case 1:
		return fmtnum(r.p)
	default:
		return fmtnum(r.p) + "/" + fmtnum(r.q)
	}
}

// FloatString formats r as a decimal number, or "undefined".
func (r Rational) FloatString() string {
	if r.q == 0 {
		return "undefined"
	}
	return fmtnum(r.Float64())
}

// fmtnum formats a float without an exponent so that the result tokenizes
// back to the same number.
func fmtnum(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// pow computes x^y, using a high-precision kernel where its domain allows.
func pow(x, y float64) (z float64) {
	if !(x > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) || y == 0 || y == 1 {
		return math.Pow(x, y)
	}
	if math.Abs(y*math.Log2(x)) > 1100 {
		// Overflows or underflows float64 regardless of precision.
		return math.Pow(x, y)
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(big.ErrNaN); !ok {
				panic(r)
			}
			z = math.Pow(x, y)
		}
	}()
	bx := new(big.Float).SetPrec(kernelPrec).SetFloat64(x)
	by := new(big.Float).SetPrec(kernelPrec).SetFloat64(y)
	bz := new(big.Float).SetPrec(kernelPrec)
	bigfloat.Pow(bz, bx, by)
	z, _ = bz.Float64()
	return z
}

// ln computes the natural logarithm of x at kernel precision. The result is
// nil if x is outside the kernel's domain.
func ln(x float64) *big.Float {
	if !(x > 0) || math.IsInf(x, 0) {
		return nil
	}
	z := new(big.Float).SetPrec(kernelPrec).SetFloat64(x)
	return bigfloat.Log(z, z)
}

// logratio computes (ln p - ln q) / ln b.
func logratio(p, q, b float64) float64 {
	lp, lq, lb := ln(p), ln(q), ln(b)
	if lp == nil || lq == nil || lb == nil || lb.Sign() == 0 {
		return (math.Log(p) - math.Log(q)) / math.Log(b)
	}
	lp.Sub(lp, lq)
	lp.Quo(lp, lb)
	f, _ := lp.Float64()
	return f
}
