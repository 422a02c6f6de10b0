package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/markkurossi/tabulate"
	bignum "github.com/shabbyrobe/go-bignum"
)

// printSummary prints the operands and results of req with their decimal
// and limb sizes.
func printSummary(w io.Writer, req request, res result, elapsed time.Duration) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Item").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)
	tab.Header("Digits").SetAlign(tabulate.MR)
	tab.Header("Limbs").SetAlign(tabulate.MR)

	addValue := func(label string, v bignum.BigUint) {
		row := tab.Row()
		row.Column(label)
		row.Column(v.String())
		row.Column(strconv.Itoa(v.DecimalLen()))
		row.Column(strconv.Itoa(len(v.Limbs())))
	}
	addScalar := func(label, v string) {
		row := tab.Row()
		row.Column(label)
		row.Column(v)
		row.Column("")
		row.Column("")
	}

	switch req.op {
	case opFact:
		addScalar("n", strconv.FormatUint(req.n, 10))
	case opPow:
		addValue("a", req.a)
		addScalar("exp", strconv.FormatUint(req.n, 10))
	case opEven, opOdd:
		addValue("a", req.a)
	default:
		addValue("a", req.a)
		addValue("b", req.b)
	}

	for i, v := range res.values {
		addValue(resultLabel(req.op, i), v)
	}
	if len(res.values) == 0 {
		addScalar(string(req.op), res.scalar)
	}

	row := tab.Row()
	row.Column("Elapsed").SetFormat(tabulate.FmtBold)
	row.Column(elapsed.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

func resultLabel(o op, i int) string {
	if o == opDivMod {
		if i == 0 {
			return "quotient"
		}
		return "remainder"
	}
	return string(o)
}

// dumpLimbs writes the raw limbs of every result, least significant first.
func dumpLimbs(w io.Writer, res result) {
	for i, v := range res.values {
		fmt.Fprintf(w, "result %d limbs: ", i)
		spew.Fdump(w, v.Limbs())
	}
}
