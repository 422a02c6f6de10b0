package bignum

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*LimbBase^(n-1) + x[n-2]*LimbBase^(n-2) + ... + x[1]*LimbBase + x[0]
//
// with 0 <= x[i] < LimbBase. A nat is normalized if it has no leading zero
// limbs, except for zero itself which is the single limb {0}. Every function
// in this file returns a newly allocated, normalized nat and leaves its
// arguments untouched.
type nat []uint64

// norm drops redundant most significant zero limbs.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (x nat) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

func (x nat) cmp(y nat) int {
	if len(x) > len(y) {
		return 1
	} else if len(x) < len(y) {
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// shiftIn returns x*LimbBase + d.
func (x nat) shiftIn(d uint64) nat {
	z := make(nat, len(x)+1)
	z[0] = d
	copy(z[1:], x)
	return z.norm()
}

func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make(nat, len(x)+1)
	var carry uint64
	for i := 0; i < len(x); i++ {
		sum := u128From64(x[i]).add64(carry)
		if i < len(y) {
			sum = sum.add64(y[i])
		}
		if sum.cmp64(LimbBase) >= 0 {
			sum = sum.sub64(LimbBase)
			carry = 1
		} else {
			carry = 0
		}
		z[i] = sum.lo
	}
	z[len(x)] = carry
	return z.norm()
}

// subNat returns x - y. The caller must ensure x >= y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint64
	for i := 0; i < len(x); i++ {
		need := borrow
		if i < len(y) {
			need += y[i]
		}
		if x[i] >= need {
			z[i] = x[i] - need
			borrow = 0
		} else {
			z[i] = (LimbBase - need) + x[i]
			borrow = 1
		}
	}
	if borrow != 0 {
		panic("bignum: subNat underflow")
	}
	return z.norm()
}

func mulNat(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}

	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(y) || carry != 0; j++ {
			var yj uint64
			if j < len(y) {
				yj = y[j]
			}
			t := mul64(xi, yj).add64(z[i+j]).add64(carry)
			carry, z[i+j] = t.quoRem64(LimbBase)
		}
	}
	return z.norm()
}

// mulNatW returns x * w for any 64-bit w, including w >= LimbBase.
func mulNatW(x nat, w uint64) nat {
	if w == 0 || x.isZero() {
		return nat{0}
	}

	z := make(nat, len(x), len(x)+2)
	var carry uint64
	for i, xi := range x {
		t := mul64(xi, w).add64(carry)
		carry, z[i] = t.quoRem64(LimbBase)
	}
	for carry != 0 {
		z = append(z, carry%LimbBase)
		carry /= LimbBase
	}
	return z.norm()
}

// divNatW returns the quotient and remainder of x / d, where d may be any
// non-zero 64-bit value.
func divNatW(x nat, d uint64) (q nat, r uint64) {
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		t := mul64(r, LimbBase).add64(x[i])
		q[i], r = t.quoRem64(d)
	}
	return q.norm(), r
}

// divNatLong returns the quotient and remainder of x / y for a multi-limb y.
// Each quotient limb is found by binary search over [0, LimbBase), using y
// multiplied by the candidate limb as the oracle.
func divNatLong(x, y nat) (q, r nat) {
	q = make(nat, len(x))
	cur := nat{0}

	for i := len(x) - 1; i >= 0; i-- {
		cur = cur.shiftIn(x[i])

		// Invariant: y*lo <= cur < y*hi. cur < y*LimbBase holds because the
		// previous remainder was < y.
		lo, hi := uint64(0), LimbBase
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			if mulNatW(y, mid).cmp(cur) <= 0 {
				lo = mid
			} else {
				hi = mid
			}
		}

		q[i] = lo
		if lo != 0 {
			cur = subNat(cur, mulNatW(y, lo))
		}
	}

	return q.norm(), cur
}

func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}
