package xpr

import (
	"math"
)

// DefaultStackLimit is the input length, counting one byte for the end of
// input, at which evaluations move their stacks from transient storage to the
// heap.
const DefaultStackLimit = 256

// StackLimitVar is the reserved variable name which overrides the stack limit
// for one evaluation. Its value must be finite and non-negative; otherwise it
// is ignored. Because it does not begin with a letter, it can never be used
// in an expression.
const StackLimitVar = "$malloc"

// StackPolicy decides whether the stack for evaluating an input of n bytes
// goes on the heap, given the effective stack limit.
type StackPolicy func(n, limit int) bool

// DefaultStackPolicy never uses the heap if limit is 0, always does if limit
// is 1, and otherwise does once n+1 reaches limit.
func DefaultStackPolicy(n, limit int) bool {
	switch limit {
	case 0:
		return false
	case 1:
		return true
	}
	return limit-1 <= n
}

// Option is an option for evaluation.
type Option interface {
	evalOption()
}

type (
	limitopt  int
	policyopt StackPolicy
)

func (limitopt) evalOption()  {}
func (policyopt) evalOption() {}

// StackLimit sets the stack limit passed to the stack policy. It is
// overridden by a StackLimitVar variable.
func StackLimit(n int) Option {
	return limitopt(n)
}

// Policy sets the stack policy. A nil policy means DefaultStackPolicy.
func Policy(p StackPolicy) Option {
	return policyopt(p)
}

// config is the result of applying options.
type config struct {
	limit  int
	policy StackPolicy
}

func configure(vars []Var, opts []Option) config {
	c := config{limit: DefaultStackLimit, policy: DefaultStackPolicy}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case limitopt:
			c.limit = int(opt)
		case policyopt:
			if opt != nil {
				c.policy = StackPolicy(opt)
			}
		default:
			panic("xpr: unknown option type")
		}
	}
	if v, ok := lookup(vars, StackLimitVar); ok && v >= 0 && !math.IsInf(v, 0) {
		if v > math.MaxInt32 {
			v = math.MaxInt32
		}
		c.limit = int(v)
	}
	return c
}
