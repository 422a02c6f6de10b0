package bignum

type RandSource interface {
	Uint64() uint64
}

// RandBigUint generates a random BigUint with between 1 and maxLimbs limbs
// from an external source. maxLimbs less than 1 is treated as 1.
func RandBigUint(source RandSource, maxLimbs int) (out BigUint) {
	if maxLimbs < 1 {
		maxLimbs = 1
	}
	n := 1 + int(source.Uint64()%uint64(maxLimbs))
	limbs := make(nat, n)
	for i := range limbs {
		limbs[i] = source.Uint64() % LimbBase
	}
	return BigUint{limbs: limbs.norm()}
}

// DifferenceBigUint subtracts the smaller of a and b from the larger.
func DifferenceBigUint(a, b BigUint) BigUint {
	x, y := a.nat(), b.nat()
	switch x.cmp(y) {
	case 1:
		return BigUint{limbs: subNat(x, y)}
	case -1:
		return BigUint{limbs: subNat(y, x)}
	}
	return BigUintFrom64(0)
}

func LargerBigUint(a, b BigUint) BigUint {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerBigUint(a, b BigUint) BigUint {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
