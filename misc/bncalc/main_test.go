package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func runCalc(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"add", "10000000000000000000", "1"}, "10000000000000000001\n"},
		{[]string{"sub", "10000000000000000000", "1"}, "9999999999999999999\n"},
		{[]string{"mul", "99999999999999999999", "2"}, "199999999999999999998\n"},
		{[]string{"divmod", "100000000000000000000", "3"}, "33333333333333333333\n1\n"},
		{[]string{"quo", "100000000000000000000", "3"}, "33333333333333333333\n"},
		{[]string{"rem", "100000000000000000000", "3"}, "1\n"},
		{[]string{"pow", "2", "100"}, "1267650600228229401496703205376\n"},
		{[]string{"fact", "20"}, "2432902008176640000\n"},
		{[]string{"cmp", "1", "10000000000000000000"}, "-1\n"},
		{[]string{"cmp", "7", "7"}, "0\n"},
		{[]string{"even", "10000000000000000000"}, "true\n"},
		{[]string{"odd", "10000000000000000000"}, "false\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			code, out, stderr := runCalc(tc.args...)
			tt.MustEqual(exitOK, code, stderr)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestRunOperationErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		msg  string
	}{
		{[]string{"divmod", "5", "0"}, "division by zero"},
		{[]string{"rem", "5", "0"}, "division by zero"},
		{[]string{"sub", "1", "2"}, "underflow"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			code, out, stderr := runCalc(tc.args...)
			tt.MustEqual(exitError, code)
			tt.MustEqual("", out)
			tt.MustAssert(strings.Contains(stderr, tc.msg), "stderr %q missing %q", stderr, tc.msg)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"frobnicate", "1", "2"},
		{"add", "1"},
		{"fact", "1", "2"},
		{"add", "12a", "1"},
		{"pow", "2", "-1"},
		{"fact", "18446744073709551616"},
		{"-log-level=loud", "add", "1", "2"},
		{"-nope", "add", "1", "2"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			code, out, _ := runCalc(args...)
			tt.MustEqual(exitUsage, code)
			tt.MustEqual("", out)
		})
	}
}

func TestRunVerbose(t *testing.T) {
	tt := assert.WrapTB(t)
	code, out, stderr := runCalc("-v", "divmod", "100000000000000000000", "3")
	tt.MustEqual(exitOK, code, stderr)
	tt.MustAssert(strings.HasPrefix(out, "33333333333333333333\n1\n"), out)
	for _, want := range []string{"quotient", "remainder", "Elapsed", "Limbs"} {
		tt.MustAssert(strings.Contains(out, want), "summary missing %q:\n%s", want, out)
	}
}

func TestRunDump(t *testing.T) {
	tt := assert.WrapTB(t)
	code, out, stderr := runCalc("-dump", "add", "9999999999999999999", "1")
	tt.MustEqual(exitOK, code, stderr)
	tt.MustAssert(strings.HasPrefix(out, "10000000000000000000\n"), out)
	tt.MustAssert(strings.Contains(out, "result 0 limbs: ([]uint64) (len=2 cap=2)"), out)
}

func TestRunDebugLog(t *testing.T) {
	tt := assert.WrapTB(t)
	code, _, stderr := runCalc("-log-level=debug", "fact", "25")
	tt.MustEqual(exitOK, code)
	tt.MustAssert(strings.Contains(stderr, "evaluated"), stderr)
	tt.MustAssert(strings.Contains(stderr, "op=fact"), stderr)
}
