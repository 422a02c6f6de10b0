package bignum

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// BigUint is an arbitrary-precision unsigned integer. The limbs are stored
// least significant first, each in the range [0, LimbBase).
type BigUint struct {
	limbs nat
}

func BigUintFrom64(v uint64) BigUint {
	if v < LimbBase {
		return BigUint{limbs: nat{v}}
	}
	return BigUint{limbs: nat{v % LimbBase, v / LimbBase}}
}

func BigUintFrom32(v uint32) BigUint { return BigUint{limbs: nat{uint64(v)}} }
func BigUintFrom16(v uint16) BigUint { return BigUint{limbs: nat{uint64(v)}} }
func BigUintFrom8(v uint8) BigUint   { return BigUint{limbs: nat{uint64(v)}} }

// BigUintFromString creates a BigUint from a string of decimal digits. Leading
// zeros are permitted and the empty string is zero. Anything else, including
// signs and whitespace, returns an error wrapping ErrInvalidFormat.
func BigUintFromString(s string) (out BigUint, err error) {
	if len(s) == 0 {
		return BigUintFrom64(0), nil
	}

	limbs := make(nat, 0, (len(s)+LimbDigits-1)/LimbDigits)

	// Chunk boundaries are counted from the right so that every limb except
	// the most significant holds exactly LimbDigits digits.
	for end := len(s); end > 0; end -= LimbDigits {
		start := end - LimbDigits
		if start < 0 {
			start = 0
		}

		var limb uint64
		for i := start; i < end; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return out, fmt.Errorf("bignum: string %q invalid: %w", s, ErrInvalidFormat)
			}
			limb = limb*10 + uint64(c-'0')
		}
		limbs = append(limbs, limb)
	}

	return BigUint{limbs: limbs.norm()}, nil
}

// MustBigUintFromString is like BigUintFromString but panics if s is invalid.
func MustBigUintFromString(s string) BigUint {
	out, err := BigUintFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// BigUintFromBigInt creates a BigUint from a big.Int. Negative values return
// zero and set accurate to 'false'.
func BigUintFromBigInt(v *big.Int) (out BigUint, accurate bool) {
	if v.Sign() < 0 {
		return BigUintFrom64(0), false
	}
	if v.IsUint64() {
		return BigUintFrom64(v.Uint64()), true
	}

	var q, r big.Int
	q.Set(v)

	// Each limb holds a little over 63 bits.
	limbs := make(nat, 0, q.BitLen()/63+1)
	for q.Sign() > 0 {
		q.QuoRem(&q, bigLimbBase, &r)
		limbs = append(limbs, r.Uint64())
	}
	return BigUint{limbs: limbs.norm()}, true
}

// nat returns the limbs of u, substituting the canonical zero for the zero
// value of BigUint.
func (u BigUint) nat() nat {
	if len(u.limbs) == 0 {
		return nat{0}
	}
	return u.limbs
}

// Limbs returns a copy of the limbs of u, least significant first.
func (u BigUint) Limbs() []uint64 {
	x := u.nat()
	out := make([]uint64, len(x))
	copy(out, x)
	return out
}

func (u BigUint) IsZero() bool { return u.nat().isZero() }

func (u BigUint) IsEven() bool { return u.nat()[0]%2 == 0 }
func (u BigUint) IsOdd() bool  { return !u.IsEven() }

// IsUint64 reports whether u can be represented as a uint64.
func (u BigUint) IsUint64() bool {
	x := u.nat()
	switch len(x) {
	case 1:
		return true
	case 2:
		return x[1] == 1 && x[0] <= maxUint64Lo
	default:
		return false
	}
}

// AsUint64 truncates the BigUint to fit in a uint64. Values outside the range
// will wrap modulo 1<<64. See IsUint64() if you want to check before you
// convert.
func (u BigUint) AsUint64() (v uint64) {
	x := u.nat()
	for i := len(x) - 1; i >= 0; i-- {
		v = v*LimbBase + x[i]
	}
	return v
}

func (u BigUint) IntoBigInt(b *big.Int) {
	x := u.nat()
	var limb big.Int
	b.SetUint64(x[len(x)-1])
	for i := len(x) - 2; i >= 0; i-- {
		b.Mul(b, bigLimbBase)
		b.Add(b, limb.SetUint64(x[i]))
	}
}

func (u BigUint) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// DecimalLen returns the number of decimal digits in u. Zero has one digit.
func (u BigUint) DecimalLen() int {
	x := u.nat()
	top := len(strconv.FormatUint(x[len(x)-1], 10))
	return top + (len(x)-1)*LimbDigits
}

func (u BigUint) String() string {
	x := u.nat()
	buf := make([]byte, 0, len(x)*LimbDigits)
	buf = strconv.AppendUint(buf, x[len(x)-1], 10)
	for i := len(x) - 2; i >= 0; i-- {
		buf = appendLimb(buf, x[i])
	}
	return string(buf)
}

// appendLimb appends v zero-padded to exactly LimbDigits digits.
func appendLimb(buf []byte, v uint64) []byte {
	var digits [LimbDigits]byte
	for i := LimbDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, digits[:]...)
}

// Format implements fmt.Formatter. Only the decimal verbs %d, %s and %v are
// supported, along with a width and the '-' and '0' flags.
func (u BigUint) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bignum.BigUint=%s)", c, u.String())
		return
	}

	str := u.String()
	width, ok := s.Width()
	if !ok || width <= len(str) {
		io.WriteString(s, str)
		return
	}

	pad := width - len(str)
	if s.Flag('-') {
		io.WriteString(s, str+strings.Repeat(" ", pad))
	} else if s.Flag('0') {
		io.WriteString(s, strings.Repeat("0", pad)+str)
	} else {
		io.WriteString(s, strings.Repeat(" ", pad)+str)
	}
}

func (u BigUint) Cmp(n BigUint) int {
	return u.nat().cmp(n.nat())
}

func (u BigUint) Equal(n BigUint) bool {
	return u.Cmp(n) == 0
}

func (u BigUint) NotEqual(n BigUint) bool {
	return u.Cmp(n) != 0
}

func (u BigUint) GreaterThan(n BigUint) bool {
	return u.Cmp(n) > 0
}

func (u BigUint) GreaterOrEqualTo(n BigUint) bool {
	return u.Cmp(n) >= 0
}

func (u BigUint) LessThan(n BigUint) bool {
	return u.Cmp(n) < 0
}

func (u BigUint) LessOrEqualTo(n BigUint) bool {
	return u.Cmp(n) <= 0
}

func (u BigUint) Add(n BigUint) BigUint {
	return BigUint{limbs: addNat(u.nat(), n.nat())}
}

func (u BigUint) Add64(n uint64) BigUint {
	return u.Add(BigUintFrom64(n))
}

func (u BigUint) Inc() BigUint {
	return u.Add64(1)
}

// Sub returns u - n. If n is greater than u, ErrUnderflow is returned instead
// of a wrapped value.
func (u BigUint) Sub(n BigUint) (BigUint, error) {
	x, y := u.nat(), n.nat()
	if x.cmp(y) < 0 {
		return BigUint{}, ErrUnderflow
	}
	return BigUint{limbs: subNat(x, y)}, nil
}

func (u BigUint) Sub64(n uint64) (BigUint, error) {
	return u.Sub(BigUintFrom64(n))
}

func (u BigUint) Dec() (BigUint, error) {
	return u.Sub64(1)
}

func (u BigUint) Mul(n BigUint) BigUint {
	return BigUint{limbs: mulNat(u.nat(), n.nat())}
}

func (u BigUint) Mul64(n uint64) BigUint {
	return BigUint{limbs: mulNatW(u.nat(), n)}
}

// QuoRem returns the quotient q and remainder r of u / by, such that
// q*by + r == u and r < by. If by is zero, ErrDivisionByZero is returned.
//
// Divisors that fit in a single limb use a one-pass short division; larger
// divisors use long division with a binary search for each quotient limb.
func (u BigUint) QuoRem(by BigUint) (q, r BigUint, err error) {
	x, y := u.nat(), by.nat()
	if y.isZero() {
		return q, r, ErrDivisionByZero
	}

	if len(y) == 1 {
		qn, rw := divNatW(x, y[0])
		return BigUint{limbs: qn}, BigUintFrom64(rw), nil
	}

	if cmp := x.cmp(y); cmp < 0 {
		return BigUintFrom64(0), BigUint{limbs: x}, nil // it's 100% remainder
	} else if cmp == 0 {
		return BigUintFrom64(1), BigUintFrom64(0), nil
	}

	qn, rn := divNatLong(x, y)
	return BigUint{limbs: qn}, BigUint{limbs: rn}, nil
}

// QuoRem64 is QuoRem for a native divisor. Any non-zero uint64 is accepted,
// including values larger than a single limb.
func (u BigUint) QuoRem64(by uint64) (q BigUint, r uint64, err error) {
	if by == 0 {
		return q, r, ErrDivisionByZero
	}
	qn, r := divNatW(u.nat(), by)
	return BigUint{limbs: qn}, r, nil
}

// Quo returns the quotient of u / by. See QuoRem.
func (u BigUint) Quo(by BigUint) (q BigUint, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

// Rem returns the remainder of u / by. See QuoRem.
func (u BigUint) Rem(by BigUint) (r BigUint, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// Pow returns u raised to the power exp using binary exponentiation. Any
// value to the power of zero is one, including zero.
func (u BigUint) Pow(exp uint64) BigUint {
	return PowBigUint(u, exp)
}

func PowBigUint(base BigUint, exp uint64) BigUint {
	result := nat{1}
	b := base.nat()
	for exp != 0 {
		if exp%2 == 0 {
			exp /= 2
			b = mulNat(b, b)
		} else {
			exp--
			result = mulNat(result, b)
		}
	}
	return BigUint{limbs: result}
}

// Factorial returns n!. The empty product for n < 2 is one.
func Factorial(n uint64) BigUint {
	result := nat{1}
	for i := uint64(2); i <= n; i++ {
		result = mulNatW(result, i)
	}
	return BigUint{limbs: result}
}

func (u BigUint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *BigUint) UnmarshalText(bts []byte) (err error) {
	v, err := BigUintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u BigUint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *BigUint) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q: %w", string(bts), ErrInvalidFormat)
		}
		bts = bts[1 : ln-1]
	} else if len(bts) == 0 {
		return fmt.Errorf("bignum: empty JSON value: %w", ErrInvalidFormat)
	}

	v, err := BigUintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
