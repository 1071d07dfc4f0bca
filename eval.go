package xpr

import (
	"math"
	"sync"
)

// Eval evaluates an expression with the given variables. The result is NaN if
// the expression is invalid or any operation in it fails. vars may be nil.
//
// Eval does not retain or modify vars, so concurrent calls need no
// synchronization.
func Eval(expr string, vars []Var, opts ...Option) float64 {
	r, _ := EvalErr(expr, vars, opts...)
	return r
}

// EvalErr is like Eval, but it also returns an error describing why the
// evaluation failed. Every non-nil error implements InputError. The result is
// NaN whenever the error is non-nil; it can also be NaN with a nil error if a
// variable is NaN.
func EvalErr(expr string, vars []Var, opts ...Option) (float64, error) {
	c := configure(vars, opts)
	// Each token consumes at least one byte of input, and the end of input
	// produces one more, so the stack never holds more than this.
	n := len(expr) + 1
	m := machine{lex: lex(expr, vars)}
	var local [DefaultStackLimit]token
	if c.policy(len(expr), c.limit) || n > len(local) {
		b := getStack(n)
		defer putStack(b)
		m.st = (*b)[:0:n]
	} else {
		m.st = local[:0:n]
	}
	r := m.run()
	traceResult(expr, r, m.err)
	if m.err != nil {
		return math.NaN(), m.err
	}
	return r, nil
}

// IsErr reports whether a result from Eval indicates failure.
func IsErr(r float64) bool {
	return math.IsNaN(r)
}

// stacks recycles heap-allocated stacks.
var stacks sync.Pool

func getStack(n int) *[]token {
	if b, _ := stacks.Get().(*[]token); b != nil && cap(*b) >= n {
		return b
	}
	b := make([]token, 0, n)
	return &b
}

func putStack(b *[]token) {
	*b = (*b)[:0]
	stacks.Put(b)
}
