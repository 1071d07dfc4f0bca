package xpr_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/xpr"
)

func TestCall(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		fn   string
		args []float64
		r    float64
	}{
		{"acos", "acos", []float64{1}, 0},
		{"asin", "asin", []float64{0}, 0},
		{"atan", "atan", []float64{0}, 0},
		{"acosh", "acosh", []float64{1}, 0},
		{"asinh", "asinh", []float64{0}, 0},
		{"atanh", "atanh", []float64{0}, 0},
		{"cos", "cos", []float64{0}, 1},
		{"sin", "sin", []float64{0}, 0},
		{"tan", "tan", []float64{0}, 0},
		{"cosh", "cosh", []float64{0}, 1},
		{"sinh", "sinh", []float64{0}, 0},
		{"tanh", "tanh", []float64{0}, 0},
		{"sqrt", "sqrt", []float64{9}, 3},
		{"cbrt", "cbrt", []float64{-8}, -2},
		{"exp", "exp", []float64{0}, 1},
		{"ceil", "ceil", []float64{-1.5}, -1},
		{"floor", "floor", []float64{1.5}, 1},
		{"round", "round", []float64{0.5}, 1},
		{"log", "log", []float64{1}, 0},
		{"log-base", "log", []float64{10, 1000}, 3},
		{"min", "min", []float64{3, -1, 2}, -1},
		{"max", "max", []float64{3, -1, 2}, 3},
		{"min-one", "min", []float64{7}, 7},
		{"sum", "sum", []float64{1, 2, 3, 4}, 10},
		{"sum-empty", "sum", nil, 0},
		{"scale3", "scale", []float64{2, 10, 1}, 5},
		{"scale5", "scale", []float64{-1, 1, 0, 10, 0}, 5},
		// failures
		{"unknown", "foo", []float64{1}, nan},
		{"identity-hidden", "", []float64{1}, nan},
		{"monadic-arity", "sin", []float64{1, 2}, nan},
		{"monadic-none", "cos", nil, nan},
		{"acos-domain", "acos", []float64{2}, nan},
		{"sqrt-domain", "sqrt", []float64{-4}, nan},
		{"log-zero", "log", []float64{0}, nan},
		{"log-base-one", "log", []float64{1, 2}, nan},
		{"log-base-neg", "log", []float64{-2, 2}, nan},
		{"log-arg-neg", "log", []float64{2, -2}, nan},
		{"log-arity", "log", []float64{1, 2, 3}, nan},
		{"min-empty", "min", nil, nan},
		{"max-empty", "max", nil, nan},
		{"scale-width", "scale", []float64{0, 10, 5}, nan},
		{"scale-width5", "scale", []float64{3, 3, 0, 1, 2}, nan},
		{"scale-arity", "scale", []float64{1, 2, 3, 4}, nan},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := xpr.Call(c.fn, c.args...)
			if math.IsNaN(c.r) {
				assert.True(t, math.IsNaN(r), "%s%v gave %g", c.fn, c.args, r)
				return
			}
			assert.InDelta(t, c.r, r, 1e-12, "%s%v", c.fn, c.args)
		})
	}
}

func TestCallMatchesEval(t *testing.T) {
	// Every function reachable by Call is reachable by name in expressions.
	for _, name := range xpr.Functions() {
		args := []float64{0.5}
		src := name + "(0.5)"
		switch name {
		case "scale":
			args = []float64{1, 2, 0.5}
			src = "scale(1, 2, 0.5)"
		}
		want := xpr.Call(name, args...)
		got := xpr.Eval(src, nil)
		if math.IsNaN(want) {
			assert.True(t, xpr.IsErr(got), src)
			continue
		}
		assert.Equal(t, want, got, src)
	}
}

func TestFunctions(t *testing.T) {
	want := []string{
		"acos", "acosh", "asin", "asinh", "atan", "atanh", "cbrt", "ceil",
		"cos", "cosh", "exp", "floor", "log", "max", "min", "round", "scale",
		"sin", "sinh", "sqrt", "sum", "tan", "tanh",
	}
	assert.Equal(t, want, xpr.Functions())
}

func TestConstants(t *testing.T) {
	c := xpr.Constants()
	assert.Len(t, c, 3)
	assert.InDelta(t, math.Pi, c["pi"], 1e-15)
	assert.InDelta(t, math.E, c["e"], 1e-15)
	assert.InDelta(t, math.Phi, c["phi"], 1e-15)
	// The map is a copy.
	c["pi"] = 3
	assert.NotEqual(t, 3.0, xpr.Constants()["pi"])
}

func TestLogAgainstBigfloat(t *testing.T) {
	// log(b, x) agrees with a high-precision quotient of logarithms.
	cases := [][2]float64{{2, 8}, {10, 1e6}, {3, 7}, {0.5, 0.125}, {1.5, 100}}
	for _, c := range cases {
		b := new(big.Float).SetPrec(200).SetFloat64(c[0])
		x := new(big.Float).SetPrec(200).SetFloat64(c[1])
		lb := bigfloat.Log(new(big.Float).SetPrec(200), b)
		lx := bigfloat.Log(new(big.Float).SetPrec(200), x)
		want, _ := lx.Quo(lx, lb).Float64()
		assert.InEpsilon(t, want, xpr.Call("log", c[0], c[1]), 1e-14, "log(%g, %g)", c[0], c[1])
	}
}
