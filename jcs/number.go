package jcs

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/canonform/jcs-format/go-jcs/debug"
)

// decimal is an arbitrary-precision base-10 value: sign * coef * 10^exp.
// coef is non-negative and carries no trailing zero digits; zero is
// represented as coef 0, exp 0, not negative.
type decimal struct {
	neg  bool
	coef *big.Int
	exp  int
}

// CanonizeNumber returns the canonical text of the decimal literal num.
//
// The rules follow the canonical scheme: zero is "0"; magnitudes of 1e21
// and above use exponential notation with an explicit "+" sign; magnitudes
// of 1e-21 and below use exponential notation with a "-" sign; everything
// in between uses plain notation rounded to at most 7 fractional digits
// (half-even), trailing zeros suppressed. Note the fixed fractional
// precision: small plain-notation magnitudes can round to "0".
func CanonizeNumber(num string) (string, error) {
	d, err := parseDecimal(num)
	if err != nil {
		return "", err
	}
	res := d.canonical()
	if debug.Number() {
		debug.Logf("jcs: number %q -> %q\n", num, res)
	}
	return res, nil
}

// parseDecimal accepts JSON number literals, plus a leading "+" and a
// leading "." or "e", which hand-built trees may produce even though JSON
// parsers never do.
func parseDecimal(s string) (*decimal, error) {
	d := &decimal{}
	rest := s
	switch {
	case strings.HasPrefix(rest, "-"):
		d.neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	mant := rest
	exp := 0
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		mant = rest[:i]
		e, err := parseExp(rest[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNumber, s)
		}
		exp = e
	}
	intDigits, fracDigits, ok := strings.Cut(mant, ".")
	if ok {
		exp -= len(fracDigits)
	}
	digits := intDigits + fracDigits
	if digits == "" || !isDigits(digits) {
		return nil, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	d.coef = coef
	d.exp = exp
	d.normalize()
	return d, nil
}

func parseExp(s string) (int, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" || !isDigits(s) {
		return 0, fmt.Errorf("bad exponent %q", s)
	}
	e := 0
	for i := 0; i < len(s); i++ {
		e = e*10 + int(s[i]-'0')
		if e > 1<<30 {
			return 0, fmt.Errorf("exponent overflow %q", s)
		}
	}
	if neg {
		e = -e
	}
	return e, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

var bigTen = big.NewInt(10)

// normalize strips trailing zero digits from the coefficient, shifting
// them into the exponent, and fixes the representation of zero.
func (d *decimal) normalize() {
	if d.coef.Sign() == 0 {
		d.neg = false
		d.exp = 0
		return
	}
	var q, r big.Int
	for {
		q.QuoRem(d.coef, bigTen, &r)
		if r.Sign() != 0 {
			return
		}
		d.coef.Set(&q)
		d.exp++
	}
}

func (d *decimal) canonical() string {
	if d.coef.Sign() == 0 {
		return "0"
	}
	digits := d.coef.String()
	// decimal exponent of the leading digit
	adj := d.exp + len(digits) - 1
	switch {
	case adj >= 21:
		return d.exponential(digits, adj)
	case adj <= -22, adj == -21 && digits == "1":
		// magnitudes of 1e-21 and below
		return d.exponential(digits, adj)
	}
	return d.plain()
}

func (d *decimal) exponential(digits string, adj int) string {
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	fmt.Fprintf(&b, "e%+03d", adj)
	return b.String()
}

func (d *decimal) plain() string {
	coef, exp := d.coef, d.exp
	if exp < -7 {
		coef = roundHalfEven(coef, -exp-7)
		exp = -7
		var r big.Int
		for coef.Sign() != 0 {
			q := new(big.Int)
			q.QuoRem(coef, bigTen, &r)
			if r.Sign() != 0 {
				break
			}
			coef = q
			exp++
		}
		if coef.Sign() == 0 {
			return "0"
		}
	}
	digits := coef.String()
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	if exp >= 0 {
		b.WriteString(digits)
		for range exp {
			b.WriteByte('0')
		}
		return b.String()
	}
	frac := -exp
	if len(digits) <= frac {
		b.WriteString("0.")
		for range frac - len(digits) {
			b.WriteByte('0')
		}
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits[:len(digits)-frac])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-frac:])
	return b.String()
}

// roundHalfEven drops the low n decimal digits of coef, rounding half to
// even. coef must be non-negative, n >= 1.
func roundHalfEven(coef *big.Int, n int) *big.Int {
	pow := new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	q, r := new(big.Int).QuoRem(coef, pow, new(big.Int))
	half := new(big.Int).Rsh(pow, 1) // 10^n/2 = 5*10^(n-1)
	switch r.Cmp(half) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}
