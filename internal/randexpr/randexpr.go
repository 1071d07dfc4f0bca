// Package randexpr generates random token soup for exercising the evaluator.
// Most generated expressions are invalid; the point is to reach unusual
// states, not to produce meaningful input.
package randexpr

import (
	"math/rand"
	"strings"

	"github.com/zephyrtronium/xpr"
)

// MaxTokens is the most tokens an expression can have.
const MaxTokens = 255

// vocab is the token set. Operators appear several times each so that they
// are about as common as operands.
var vocab = func() []string {
	v := []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"0.1", "3.2", "99.54", "34.987",
		"4e3", "5E2", "9E1", "1e0",
		"5.e2", "1.e2", "2.e9",
		"0.6e3", "0.5e-2", "0.4e2", "0.3E0",
		"7e-2", "6E-3", "5e-10",
		"2e", "eE", "pi", "phi", "e", ".", "1e400",
		"+", "+", "+", "-", "-", "-", "*", "*", "*", "/", "/", "/", "^", "^", "^",
		"(", "(", ",", ")", ")",
		"foo",
	}
	return append(v, xpr.Functions()...)
}()

// Vocabulary returns the tokens a Generator draws from.
func Vocabulary() []string {
	return append([]string(nil), vocab...)
}

// Generator produces random expressions. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	b   strings.Builder
}

// New creates a generator. Generators with the same seed produce the same
// sequence of expressions.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a new expression of between 1 and MaxTokens tokens, each
// preceded by a space.
func (g *Generator) Next() string {
	n := g.rng.Intn(MaxTokens + 1)
	if n == 0 {
		n = 1
	}
	g.b.Reset()
	for i := 0; i < n; i++ {
		g.b.WriteByte(' ')
		g.b.WriteString(vocab[g.rng.Intn(len(vocab))])
	}
	return g.b.String()
}
