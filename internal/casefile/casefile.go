// Package casefile reads and runs evaluator test cases.
//
// A case file holds one case per line. Blank lines and lines beginning with #
// are ignored. A case is an optional list of variable definitions followed by
// a check:
//
//	x:4;y:0.5;x*y=2
//	sqrt(2)^2~2
//	!max()
//
// Each definition is name:value; a definition without a value sets the
// variable to 0. The check expr=want requires expr to evaluate exactly to
// want, expr~want requires it to be within a relative tolerance of Eps, and
// !expr requires evaluation to fail.
package casefile

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/xpr"
)

// Eps is the tolerance for approximate cases. Near zero it is an absolute
// tolerance; elsewhere it is relative to the expected value.
const Eps = 1.0 / (1 << 20)

// Mode is the kind of check a case performs.
type Mode int

const (
	// Exact requires the result to equal the expected value.
	Exact Mode = iota
	// Approx requires the result to be within Eps of the expected value.
	Approx
	// Fail requires the evaluation to fail.
	Fail
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "="
	case Approx:
		return "~"
	case Fail:
		return "!"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Case is a single test case.
type Case struct {
	// Line is the 1-based line number the case came from.
	Line int
	Vars []xpr.Var
	Expr string
	Mode Mode
	// Want is the expected result. It is unused for Fail cases.
	Want float64
}

// NewReader decodes a case file. Input is UTF-8 unless it starts with a
// UTF-8 or UTF-16 byte order mark.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Parse reads all cases from r. It stops at the first malformed line.
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	sc := bufio.NewScanner(NewReader(r))
	sc.Buffer(nil, 1<<20)
	n := 0
	for sc.Scan() {
		n++
		c, ok, err := ParseLine(n, sc.Text())
		if err != nil {
			return cases, err
		}
		if ok {
			cases = append(cases, c)
		}
	}
	if err := sc.Err(); err != nil {
		return cases, errors.Wrapf(err, "reading line %d", n+1)
	}
	return cases, nil
}

// ParseLine parses line n of a case file. ok is false for blank lines and
// comments.
func ParseLine(n int, line string) (c Case, ok bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || line[0] == '#' {
		return Case{}, false, nil
	}
	c.Line = n
	for {
		def, rest, found := strings.Cut(line, ";")
		if !found {
			break
		}
		line = rest
		name, val, _ := strings.Cut(def, ":")
		if name == "" {
			return Case{}, false, errors.Errorf("line %d: variable definition %q has no name", n, def)
		}
		var v float64
		if val != "" {
			v, err = parseNum(val)
			if err != nil {
				return Case{}, false, errors.Wrapf(err, "line %d: variable %s", n, name)
			}
		}
		c.Vars = append(c.Vars, xpr.Var{Name: name, Value: v})
	}
	if strings.HasPrefix(line, "!") {
		c.Mode = Fail
		c.Expr = line[1:]
		return c, true, nil
	}
	sep := "="
	if strings.Contains(line, "~") {
		sep = "~"
		c.Mode = Approx
	}
	expr, want, found := strings.Cut(line, sep)
	if !found || expr == "" || want == "" {
		return Case{}, false, errors.Errorf("line %d: expected expr%swant", n, sep)
	}
	c.Expr = expr
	c.Want, err = parseNum(want)
	if err != nil {
		return Case{}, false, errors.Wrapf(err, "line %d: expected value", n)
	}
	return c, true, nil
}

func parseNum(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Errorf("bad number %q", s)
	}
	return v, nil
}

// Run evaluates the case. It returns nil if the result is as expected and an
// error describing the difference otherwise.
func (c *Case) Run(opts ...xpr.Option) error {
	r, err := xpr.EvalErr(c.Expr, c.Vars, opts...)
	if c.Mode == Fail {
		if !xpr.IsErr(r) {
			return errors.Errorf("%d: %s=%g but should fail", c.Line, c.Expr, r)
		}
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "%d: %s", c.Line, c.Expr)
	}
	if !Close(r, c.Want, c.Mode == Exact) {
		op := "!="
		if c.Mode == Approx {
			op = "!~"
		}
		return errors.Errorf("%d: %s=%g expected=%g [%x %s %x]", c.Line, c.Expr, r, c.Want, r, op, c.Want)
	}
	return nil
}

// Close reports whether got matches want. Unless exact is set, it allows a
// difference of Eps.
func Close(got, want float64, exact bool) bool {
	if got == want {
		return true
	}
	if exact || math.IsNaN(got) || math.IsNaN(want) {
		return false
	}
	if -Eps <= want && want <= Eps {
		return -Eps <= got && got <= Eps
	}
	return math.Abs(got-want) <= Eps*math.Abs(want)
}
