package main

import (
	"fmt"
	"io"
	"strconv"

	bignum "github.com/shabbyrobe/go-bignum"
)

type op string

const (
	opAdd    op = "add"
	opSub    op = "sub"
	opMul    op = "mul"
	opDivMod op = "divmod"
	opQuo    op = "quo"
	opRem    op = "rem"
	opPow    op = "pow"
	opFact   op = "fact"
	opCmp    op = "cmp"
	opEven   op = "even"
	opOdd    op = "odd"
)

// arity is the number of operands each op takes.
var arity = map[op]int{
	opAdd:    2,
	opSub:    2,
	opMul:    2,
	opDivMod: 2,
	opQuo:    2,
	opRem:    2,
	opPow:    2,
	opFact:   1,
	opCmp:    2,
	opEven:   1,
	opOdd:    1,
}

type request struct {
	op op

	a, b bignum.BigUint

	// n holds the uint64 argument of pow and fact.
	n uint64
}

func parseRequest(args []string) (req request, err error) {
	if len(args) == 0 {
		return req, fmt.Errorf("bncalc: missing op")
	}

	req.op = op(args[0])
	want, ok := arity[req.op]
	if !ok {
		return req, fmt.Errorf("bncalc: unknown op %q", args[0])
	}
	if len(args)-1 != want {
		return req, fmt.Errorf("bncalc: op %q expects %d operands, found %d", req.op, want, len(args)-1)
	}

	switch req.op {
	case opFact:
		req.n, err = parseUint(args[1])
		return req, err

	case opPow:
		if req.a, err = bignum.BigUintFromString(args[1]); err != nil {
			return req, err
		}
		req.n, err = parseUint(args[2])
		return req, err
	}

	if req.a, err = bignum.BigUintFromString(args[1]); err != nil {
		return req, err
	}
	if want == 2 {
		if req.b, err = bignum.BigUintFromString(args[2]); err != nil {
			return req, err
		}
	}
	return req, nil
}

func parseUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bncalc: %q is not a uint64: %w", s, bignum.ErrInvalidFormat)
	}
	return n, nil
}

// result is either a list of BigUint values or a single scalar line for the
// ops that do not produce a number (cmp, even, odd).
type result struct {
	values []bignum.BigUint
	scalar string
}

func (req request) eval() (res result, err error) {
	switch req.op {
	case opAdd:
		res.values = []bignum.BigUint{req.a.Add(req.b)}

	case opSub:
		v, err := req.a.Sub(req.b)
		if err != nil {
			return res, err
		}
		res.values = []bignum.BigUint{v}

	case opMul:
		res.values = []bignum.BigUint{req.a.Mul(req.b)}

	case opDivMod:
		q, r, err := req.a.QuoRem(req.b)
		if err != nil {
			return res, err
		}
		res.values = []bignum.BigUint{q, r}

	case opQuo:
		q, err := req.a.Quo(req.b)
		if err != nil {
			return res, err
		}
		res.values = []bignum.BigUint{q}

	case opRem:
		r, err := req.a.Rem(req.b)
		if err != nil {
			return res, err
		}
		res.values = []bignum.BigUint{r}

	case opPow:
		res.values = []bignum.BigUint{req.a.Pow(req.n)}

	case opFact:
		res.values = []bignum.BigUint{bignum.Factorial(req.n)}

	case opCmp:
		res.scalar = strconv.Itoa(req.a.Cmp(req.b))

	case opEven:
		res.scalar = strconv.FormatBool(req.a.IsEven())

	case opOdd:
		res.scalar = strconv.FormatBool(req.a.IsOdd())

	default:
		return res, fmt.Errorf("bncalc: unknown op %q", req.op)
	}
	return res, nil
}

func (res result) print(w io.Writer) {
	if len(res.values) == 0 {
		fmt.Fprintln(w, res.scalar)
		return
	}
	for _, v := range res.values {
		fmt.Fprintln(w, v)
	}
}

func (res result) digits() (n int) {
	for _, v := range res.values {
		n += v.DecimalLen()
	}
	return n
}

func (res result) limbs() (n int) {
	for _, v := range res.values {
		n += len(v.Limbs())
	}
	return n
}
