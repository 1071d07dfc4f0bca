package xpr

import (
	"math"
	"sort"
)

// function is a built-in function from reals to a real. A result of NaN means
// the arguments were outside the function's domain.
type function interface {
	// Call evaluates the function. Call checks the argument count itself and
	// returns NaN if it cannot handle len(args) arguments, so it is safe to
	// call without consulting CanCall first.
	Call(args []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	// The evaluator uses it only to tell arity errors apart from domain
	// errors.
	CanCall(n int) bool
}

type funcID uint8

// fnIdentity is the implicit function applied to bare parentheses.
const fnIdentity funcID = 0

// catalog lists the built-in functions. Index 0 is the identity.
var catalog = [...]struct {
	name string
	fn   function
}{
	{"", variadic{1, 1, func(x []float64) float64 { return x[0] }}},
	{"acos", monadic(math.Acos)},
	{"acosh", monadic(math.Acosh)},
	{"asin", monadic(math.Asin)},
	{"asinh", monadic(math.Asinh)},
	{"atan", monadic(math.Atan)},
	{"atanh", monadic(math.Atanh)},
	{"cbrt", monadic(math.Cbrt)},
	{"ceil", monadic(math.Ceil)},
	{"cos", monadic(math.Cos)},
	{"cosh", monadic(math.Cosh)},
	{"exp", monadic(math.Exp)},
	{"floor", monadic(math.Floor)},
	{"log", variadic{1, 2, logb}},
	{"max", fold{math.NaN(), func(l, r float64) float64 {
		if l > r {
			return l
		}
		return r
	}}},
	{"min", fold{math.NaN(), func(l, r float64) float64 {
		if l < r {
			return l
		}
		return r
	}}},
	{"round", monadic(math.Round)},
	{"scale", scale{}},
	{"sin", monadic(math.Sin)},
	{"sinh", monadic(math.Sinh)},
	{"sqrt", monadic(math.Sqrt)},
	{"sum", fold{0, func(l, r float64) float64 { return l + r }}},
	{"tan", monadic(math.Tan)},
	{"tanh", monadic(math.Tanh)},
}

var funcnames = func() map[string]funcID {
	m := make(map[string]funcID, len(catalog)-1)
	for i, f := range catalog[1:] {
		m[f.name] = funcID(i + 1)
	}
	return m
}()

// Functions returns the names of the built-in functions in sorted order.
func Functions() []string {
	r := make([]string, 0, len(funcnames))
	for name := range funcnames {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// Call calls a built-in function by name. The result is NaN if there is no
// such function or the arguments are not acceptable to it.
func Call(name string, args ...float64) float64 {
	id, ok := funcnames[name]
	if !ok {
		return math.NaN()
	}
	return catalog[id].fn.Call(args)
}

// monadic wraps a function of one variable.
type monadic func(float64) float64

func (f monadic) Call(args []float64) float64 {
	if len(args) != 1 {
		return math.NaN()
	}
	return f(args[0])
}

func (monadic) CanCall(n int) bool {
	return n == 1
}

// variadic wraps a function accepting between min and max arguments.
type variadic struct {
	min, max int
	f        func([]float64) float64
}

func (v variadic) Call(args []float64) float64 {
	if !v.CanCall(len(args)) {
		return math.NaN()
	}
	return v.f(args)
}

func (v variadic) CanCall(n int) bool {
	return v.min <= n && n <= v.max
}

// fold combines any number of arguments left to right. The empty fold is
// empty, which may be NaN to reject calls with no arguments.
type fold struct {
	empty float64
	f     func(l, r float64) float64
}

func (f fold) Call(args []float64) float64 {
	if len(args) == 0 {
		return f.empty
	}
	l := args[0]
	for _, r := range args[1:] {
		l = f.f(l, r)
	}
	return l
}

func (f fold) CanCall(n int) bool {
	return n > 0 || !math.IsNaN(f.empty)
}

// logb is log(x) or log(b, x), the logarithm of x in base b.
func logb(args []float64) float64 {
	if len(args) == 1 {
		if args[0] <= 0 {
			return math.NaN()
		}
		return math.Log(args[0])
	}
	b, x := args[0], args[1]
	if b <= 0 || b == 1 || x <= 0 {
		return math.NaN()
	}
	return math.Log(x) / math.Log(b)
}

// scale maps x linearly from one range onto another. With three arguments
// (A, B, x) the ranges are [0, A] and [0, B]; with five (a, A, b, B, x) they
// are [a, A] and [b, B].
type scale struct{}

func (scale) Call(args []float64) float64 {
	var a, aa, b, bb, x float64
	switch len(args) {
	case 3:
		aa, bb, x = args[0], args[1], args[2]
	case 5:
		a, aa, b, bb, x = args[0], args[1], args[2], args[3], args[4]
	default:
		return math.NaN()
	}
	w := aa - a
	if w == 0 {
		return math.NaN()
	}
	return b + (x-a)*(bb-b)/w
}

func (scale) CanCall(n int) bool {
	return n == 3 || n == 5
}
