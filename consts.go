package bignum

import (
	"math/big"
)

const (
	// LimbBase is the radix of a single limb. It is the largest power of ten
	// below 1<<64, so (LimbBase-1)*(LimbBase-1) plus two limb-sized carries
	// still fits in 128 bits.
	LimbBase uint64 = 10000000000000000000

	// LimbDigits is the number of decimal digits in a full limb.
	LimbDigits = 19

	maxUint64 = 1<<64 - 1

	// maxUint64 split into limbs: 1*LimbBase + maxUint64Lo
	maxUint64Lo = maxUint64 - LimbBase
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	bigLimbBase  = new(big.Int).SetUint64(LimbBase)
	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)
