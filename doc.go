/*
Package bignum provides BigUint, an arbitrary-precision unsigned integer stored
as a sequence of base 10^19 limbs.

BigUint is a value type; all operations return new values and never modify
their operands. The zero value is ready to use and represents 0.

Simple example:

	a := BigUintFrom64(math.MaxUint64)
	b := MustBigUintFromString("99999999999999999999")
	fmt.Println(a.Mul(b))
	// Output: 1844674407370955161481553255926290448385

BigUint can be created from a variety of sources:

	BigUintFrom64(v uint64) BigUint
	BigUintFrom32(v uint32) BigUint
	BigUintFrom16(v uint16) BigUint
	BigUintFrom8(v uint8) BigUint
	BigUintFromString(s string) (out BigUint, err error)
	BigUintFromBigInt(v *big.Int) (out BigUint, accurate bool)

Operations that can not produce a meaningful unsigned result return an error
rather than wrapping: Sub returns ErrUnderflow if the result would be
negative, and QuoRem returns ErrDivisionByZero for a zero divisor.

Because limbs are decimal, conversion to and from decimal text is linear in
the number of digits. Multiplication is the schoolbook O(n*m) algorithm and
division performs a binary search per quotient limb, so very large operands
are quadratic in cost.

BigUint supports the following formatting and marshalling interfaces:

	- fmt.Formatter (%d, %s and %v only)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
