package xpr

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits at which constants are computed before
// rounding to float64.
const constprec = 128

var constants = map[string]float64{
	"e":   bigE(),
	"pi":  bigPi(),
	"phi": bigPhi(),
}

func bigE() float64 {
	one := new(big.Float).SetPrec(constprec).SetInt64(1)
	r, _ := bigfloat.Exp(new(big.Float).SetPrec(constprec), one).Float64()
	return r
}

func bigPi() float64 {
	r, _ := bigfloat.Pi(new(big.Float).SetPrec(constprec)).Float64()
	return r
}

func bigPhi() float64 {
	// (1 + sqrt 5) / 2
	x := new(big.Float).SetPrec(constprec).SetInt64(5)
	x.Sqrt(x)
	x.Add(x, big.NewFloat(1))
	x.Quo(x, big.NewFloat(2))
	r, _ := x.Float64()
	return r
}

// Constants returns the built-in constants by name. The returned map is a
// copy.
func Constants() map[string]float64 {
	m := make(map[string]float64, len(constants))
	for k, v := range constants {
		m[k] = v
	}
	return m
}
