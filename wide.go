package bignum

import (
	"math/bits"
)

// u128 is the double-width accumulator used by the limb arithmetic. Limb
// products and sums are accumulated here and reduced by LimbBase before they
// are stored, so a limb never needs more than 64 bits but an intermediate
// never overflows.
type u128 struct {
	hi, lo uint64
}

func u128From64(v uint64) u128 { return u128{lo: v} }

// mul64 returns the full 128-bit product of u and v.
func mul64(u, v uint64) u128 {
	hi, lo := mul64to128(u, v)
	return u128{hi: hi, lo: lo}
}

func (u u128) add64(n uint64) (v u128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u u128) sub64(n uint64) (v u128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u u128) cmp64(n uint64) int {
	if u.hi > 0 {
		return 1
	} else if u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

// quoRem64 divides u by a 64-bit divisor. The quotient must fit in 64 bits,
// which holds whenever u.hi < by. Every caller reduces by LimbBase or by a
// divisor larger than the running remainder, so this is always the case.
func (u u128) quoRem64(by uint64) (q, r uint64) {
	if by == 0 {
		panic("bignum: u128 division by zero")
	}
	if u.hi >= by {
		panic("bignum: u128 quotient overflows 64 bits")
	}
	if u.hi == 0 {
		return u.lo / by, u.lo % by
	}
	return quorem128by64(u.hi, u.lo, by)
}

// Hacker's delight 9-4, divlu:
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}
