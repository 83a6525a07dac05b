package rational

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNilArgument                = errors.New("rational: nil argument")
	ErrInvalidDenominator         = errors.New("rational: denominator is zero")
	ErrParse                      = errors.New("rational: invalid number format")
	ErrUnsupportedDeserialization = errors.New("rational: raw state restore is not supported, use the msgpack or JSON form")
)

var (
	Zero *Rational
	One  *Rational

	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

func init() {
	Zero = NewFromInt64(0)
	One = NewFromInt64(1)
}

// Rational is an immutable fraction with an arbitrarily large numerator and
// denominator. The stored denominator is always positive, and the pair is
// always fully reduced, so two Rationals represent the same quantity iff
// their fields are equal. Instances are only ever built by New and may be
// shared freely across goroutines.
type Rational struct {
	n big.Int
	d big.Int
}

// New returns the canonical form of n/d. The inputs stay owned by the
// caller; New works on private copies, so mutating n or d afterwards
// cannot reach the returned value.
func New(n, d *big.Int) (*Rational, error) {
	if n == nil || d == nil {
		return nil, ErrNilArgument
	}
	if d.Sign() == 0 {
		return nil, ErrInvalidDenominator
	}

	r := new(Rational)
	if n.Sign() == 0 {
		r.d.SetInt64(1)
		return r, nil
	}

	r.n.Set(n)
	r.d.Set(d)

	var g big.Int
	g.GCD(nil, nil, new(big.Int).Abs(&r.n), new(big.Int).Abs(&r.d))
	r.n.Quo(&r.n, &g)
	r.d.Quo(&r.d, &g)

	if r.d.Sign() < 0 {
		r.n.Neg(&r.n)
		r.d.Neg(&r.d)
	}
	return r, nil
}

func NewFromBigInt(n *big.Int) (*Rational, error) {
	return New(n, bigOne)
}

func NewFromInt64(n int64) *Rational {
	r, err := New(big.NewInt(n), bigOne)
	if err != nil {
		panic(err)
	}
	return r
}

func NewFromInt64Pair(n, d int64) (*Rational, error) {
	return New(big.NewInt(n), big.NewInt(d))
}

// NewFromString parses the canonical form produced by String, i.e. "n" or
// "n/d" where both parts are base-10 digit runs and only the numerator may
// carry a single leading minus sign.
func NewFromString(s string) (*Rational, error) {
	parts := strings.SplitN(s, "/", 2)
	n, ok := parseDecimalInt(parts[0], true)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	d := bigOne
	if len(parts) == 2 {
		d, ok = parseDecimalInt(parts[1], false)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrParse, s)
		}
	}
	return New(n, d)
}

func parseDecimalInt(s string, signed bool) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	digits := s
	if signed && s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}

// NewFromDecimal converts a decimal number exactly: a value with coefficient
// c and exponent e becomes c*10^e over 1 when e >= 0, or c over 10^-e.
func NewFromDecimal(x decimal.Decimal) *Rational {
	n := new(big.Int).Set(x.Coefficient())
	d := bigOne
	if exp := int64(x.Exponent()); exp > 0 {
		n.Mul(n, new(big.Int).Exp(bigTen, big.NewInt(exp), nil))
	} else if exp < 0 {
		d = new(big.Int).Exp(bigTen, big.NewInt(-exp), nil)
	}
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

func NewFromDecimalString(s string) (*Rational, error) {
	x, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return NewFromDecimal(x), nil
}

// Numerator returns a copy of the numerator. The stored field is never
// exposed, so callers cannot reach it through Set.
func (r *Rational) Numerator() *big.Int {
	return new(big.Int).Set(&r.n)
}

// Denominator returns a copy of the denominator, which is always positive.
func (r *Rational) Denominator() *big.Int {
	return new(big.Int).Set(&r.d)
}

func (r *Rational) Sign() int {
	return r.n.Sign()
}

// Cmp returns -1, 0 or 1 as r is less than, equal to or greater than y.
// Both denominators are positive, so cross-multiplying the numerators
// preserves the ordering without computing a common denominator.
func (r *Rational) Cmp(y *Rational) int {
	if y == nil {
		panic(ErrNilArgument)
	}
	if r == y {
		return 0
	}
	if r.d.Cmp(&y.d) == 0 {
		return r.n.Cmp(&y.n)
	}
	var a, b big.Int
	a.Mul(&r.n, &y.d)
	b.Mul(&y.n, &r.d)
	return a.Cmp(&b)
}

// Equal reports whether r and y are the same canonical pair. A nil operand
// compares unequal to everything.
func (r *Rational) Equal(y *Rational) bool {
	if r == y {
		return true
	}
	if r == nil || y == nil {
		return false
	}
	return r.n.Cmp(&y.n) == 0 && r.d.Cmp(&y.d) == 0
}

// Hash is consistent with Equal: equal values always hash the same.
func (r *Rational) Hash() uint64 {
	h := fnv.New64a()
	if r.n.Sign() < 0 {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write(r.n.Bytes())
	h.Write([]byte{'/'})
	h.Write(r.d.Bytes())
	return h.Sum64()
}

func (r *Rational) Add(y *Rational) *Rational {
	if y == nil {
		panic(ErrNilArgument)
	}
	var n, c, d big.Int
	n.Mul(&r.n, &y.d)
	c.Mul(&y.n, &r.d)
	n.Add(&n, &c)
	d.Mul(&r.d, &y.d)
	v, err := New(&n, &d)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Rational) Mul(y *Rational) *Rational {
	if y == nil {
		panic(ErrNilArgument)
	}
	var n, d big.Int
	n.Mul(&r.n, &y.n)
	d.Mul(&r.d, &y.d)
	v, err := New(&n, &d)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Rational) Neg() *Rational {
	v, err := New(new(big.Int).Neg(&r.n), &r.d)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders "n" when the denominator is one, otherwise "n/d", with a
// minus sign only ever on the numerator. NewFromString accepts this form.
func (r *Rational) String() string {
	if r.d.Cmp(bigOne) == 0 {
		return r.n.String()
	}
	return r.n.String() + "/" + r.d.String()
}
