package xpr

import (
	"math"
)

// machine is a shift/reduce evaluator. The stack holds every token read so
// far, partially evaluated. Shifting pushes a token; reducing applies the
// pending operators near the top of the stack as early as their binding
// strengths allow, so below any open parenthesis the strengths on the stack
// never decrease from bottom to top.
//
// A close parenthesis is never pushed. It forces reduction down to its open
// parenthesis and then collapses the parenthesized run, along with a function
// token directly before it, into a single value.
type machine struct {
	lex *lexer
	st  []token
	// bs is the strength of the most recent operator, open parenthesis, or
	// comma. New values record it.
	bs  strength
	err error
}

// run evaluates the whole input. On failure it returns NaN and m.err is set.
func (m *machine) run() float64 {
	for {
		tok, err := m.lex.next()
		if err != nil {
			m.err = err
			return math.NaN()
		}
		if tok.kind != tokenSpace {
			m.trace(tok)
		}
		switch tok.kind {
		case tokenSpace:
			// Whitespace separates tokens but never reaches the stack.
		case tokenEOF:
			return m.end(tok)
		case tokenNum:
			tok.bs = m.bs
			m.push(tok)
		case tokenFunc:
			m.push(tok)
		case tokenOpen:
			// The open parenthesis remembers the strength outside it so that
			// the value it becomes can restore it.
			tok.bs = m.bs
			m.push(tok)
			m.bs = bsOpen
		case tokenClose:
			if !m.close(tok) {
				return math.NaN()
			}
		case tokenComma:
			if !m.comma(tok) {
				return math.NaN()
			}
		default:
			if !m.operator(tok) {
				return math.NaN()
			}
		}
	}
}

// end reduces everything at the end of the input.
func (m *machine) end(tok token) float64 {
	if len(m.st) == 0 {
		m.err = &EmptyExpressionError{Col: tok.pos}
		return math.NaN()
	}
	if !m.reduce(bsNone) {
		return math.NaN()
	}
	if len(m.st) != 1 || m.st[0].class() != classValue {
		m.err = m.leftover()
		return math.NaN()
	}
	return m.st[0].val
}

// leftover describes a stack that did not reduce to a single value.
func (m *machine) leftover() error {
	for _, t := range m.st {
		if t.kind == tokenOpen {
			return &BracketError{Col: t.pos, Open: true}
		}
	}
	t := m.st[len(m.st)-1]
	switch t.class() {
	case classValue:
		return &SyntaxError{Col: t.pos, Token: t.String(), Msg: "value without operator"}
	case classFunc:
		return &SyntaxError{Col: t.pos, Token: t.String(), Msg: "function name without arguments"}
	}
	return &SyntaxError{Col: t.pos, Token: t.String(), Msg: "missing operand"}
}

func (m *machine) comma(tok token) bool {
	if len(m.st) == 0 {
		m.err = &SeparatorError{Col: tok.pos}
		return false
	}
	if k := m.top(0).kind; k == tokenOpen || k == tokenComma {
		// An argument can't be empty.
		m.err = &SeparatorError{Col: tok.pos}
		return false
	}
	if !m.reduce(bsOpen) {
		return false
	}
	m.push(tok)
	m.bs = bsOpen
	return true
}

func (m *machine) close(tok token) bool {
	if len(m.st) == 0 {
		m.err = &BracketError{Col: tok.pos}
		return false
	}
	if m.top(0).kind != tokenOpen {
		if !m.reduce(bsOpen) {
			return false
		}
	}
	return m.call(tok)
}

func (m *machine) operator(tok token) bool {
	if tok.canUnary {
		// With no value to the left, + and - are signs.
		if len(m.st) == 0 || m.top(0).class() == classOp {
			tok = toUnary(tok)
		}
	} else if len(m.st) == 0 {
		m.err = &SyntaxError{Col: tok.pos, Token: tok.String(), Msg: "missing left operand"}
		return false
	}
	if len(m.st) != 0 {
		// Left-associative operators also reduce operators of equal strength,
		// which evaluates them left to right.
		floor := tok.bs
		if tok.assoc == assocLeft {
			floor--
		}
		if !m.reduce(floor) {
			return false
		}
	}
	m.bs = tok.bs
	m.push(tok)
	return true
}

// reduce applies operators at the top of the stack while the top binds more
// strongly than floor.
func (m *machine) reduce(floor strength) bool {
	for len(m.st) > 1 && m.top(0).bs > floor {
		if !m.step() {
			return false
		}
		m.traceStack("reduce")
	}
	return true
}

// step performs one reduction: a unary operator and its operand, or a binary
// operator and its two operands, become a single value.
func (m *machine) step() bool {
	v, op := m.top(0), m.top(1)
	if op.class() == classOp && op.unary {
		if v.class() != classValue {
			m.err = &SyntaxError{Col: op.pos, Token: op.String(), Msg: "missing operand"}
			return false
		}
		r := v.val
		if op.kind == tokenMinus {
			r = -r
		}
		// The result takes the strength of whatever is now beneath it, which
		// is the context the operator was pushed in.
		bs := bsNone
		if len(m.st) > 2 {
			bs = m.top(2).bs
			if m.top(2).kind == tokenOpen {
				bs = bsOpen
			}
		}
		m.pop(2)
		m.push(token{kind: tokenNum, val: r, bs: bs, pos: op.pos})
		return true
	}
	if op.class() != classOp {
		return m.misplaced(v, op)
	}
	switch op.kind {
	case tokenOpen:
		m.err = &BracketError{Col: op.pos, Open: true}
		return false
	case tokenComma:
		m.err = &SeparatorError{Col: op.pos}
		return false
	}
	if len(m.st) < 3 {
		m.err = &SyntaxError{Col: op.pos, Token: op.String(), Msg: "missing left operand"}
		return false
	}
	l := m.top(2)
	if l.class() != classValue || v.class() != classValue {
		m.err = &SyntaxError{Col: op.pos, Token: op.String(), Msg: "missing operand"}
		return false
	}
	var r float64
	switch op.kind {
	case tokenPlus:
		r = l.val + v.val
	case tokenMinus:
		r = l.val - v.val
	case tokenMul:
		r = l.val * v.val
	case tokenDiv:
		if v.val == 0 {
			m.err = &DomainError{Col: op.pos, Func: "/", Args: []float64{l.val, v.val}}
			return false
		}
		r = l.val / v.val
	case tokenPow:
		if math.IsNaN(l.val) || math.IsNaN(v.val) || l.val < 0 && math.Round(v.val) != v.val {
			m.err = &DomainError{Col: op.pos, Func: "^", Args: []float64{l.val, v.val}}
			return false
		}
		r = math.Pow(l.val, v.val)
	default:
		panic("xpr: unknown operator " + op.String())
	}
	// The left operand's recorded strength is the context the whole binary
	// expression appeared in.
	m.pop(3)
	m.push(token{kind: tokenNum, val: r, bs: l.bs, pos: l.pos})
	return true
}

// misplaced reports a top of stack that cannot be reduced.
func (m *machine) misplaced(v, below token) bool {
	switch {
	case v.class() == classValue && below.class() == classValue:
		m.err = &SyntaxError{Col: v.pos, Token: v.String(), Msg: "value without operator"}
	case below.class() == classFunc:
		m.err = &SyntaxError{Col: below.pos, Token: below.String(), Msg: "function name without arguments"}
	default:
		m.err = &SyntaxError{Col: v.pos, Token: v.String(), Msg: "missing operand"}
	}
	return false
}

// call resolves a close parenthesis. Above the matching open parenthesis
// there must be an alternating run of values and commas, beginning and ending
// with a value, or nothing at all. The run, the open parenthesis, and a
// function token before it if there is one collapse into the call's result.
func (m *machine) call(tok token) bool {
	// Find the open parenthesis, checking the run on the way.
	k := len(m.st) - 1
	n := 0
	if m.st[k].kind != tokenOpen {
		want := true
		for ; k > 0 && m.st[k].kind != tokenOpen; k-- {
			t := m.st[k]
			if want {
				if t.class() != classValue {
					return m.badArg(t)
				}
				n++
			} else if t.kind != tokenComma {
				return m.badArg(t)
			}
			want = !want
		}
		if m.st[k].kind != tokenOpen {
			m.err = &BracketError{Col: tok.pos}
			return false
		}
		if want {
			// The run began with a comma.
			m.err = &SeparatorError{Col: m.st[k+1].pos}
			return false
		}
	}
	open := m.st[k]
	args := make([]float64, 0, n)
	for i := k + 1; i < len(m.st); i += 2 {
		args = append(args, m.st[i].val)
	}

	id, pos := fnIdentity, open.pos
	if k > 0 && m.st[k-1].class() == classFunc {
		k--
		id, pos = m.st[k].fn, m.st[k].pos
	}
	f := catalog[id]
	if !f.fn.CanCall(n) {
		m.err = &CallError{Col: tok.pos, Func: f.name, Len: n}
		return false
	}
	r := f.fn.Call(args)
	if math.IsNaN(r) {
		m.err = &DomainError{Col: tok.pos, Func: f.name + "()", Args: args}
		return false
	}
	m.st = m.st[:k]
	m.push(token{kind: tokenNum, val: r, bs: open.bs, pos: pos})
	m.traceStack("call")
	return true
}

// badArg reports an argument list that does not alternate correctly.
func (m *machine) badArg(t token) bool {
	switch t.class() {
	case classValue:
		m.err = &SyntaxError{Col: t.pos, Token: t.String(), Msg: "value without operator"}
	case classFunc:
		m.err = &SyntaxError{Col: t.pos, Token: t.String(), Msg: "function name without arguments"}
	default:
		if t.kind == tokenComma {
			m.err = &SeparatorError{Col: t.pos}
		} else {
			m.err = &SyntaxError{Col: t.pos, Token: t.String(), Msg: "missing operand"}
		}
	}
	return false
}

// push shifts a token. The stack never needs more than one slot per input
// byte plus one, so running out of capacity is a bug.
func (m *machine) push(t token) {
	if len(m.st) == cap(m.st) {
		panic("xpr: stack overflow")
	}
	m.st = append(m.st, t)
}

// pop removes the top n tokens.
func (m *machine) pop(n int) {
	m.st = m.st[:len(m.st)-n]
}

// top returns the token i places below the top of the stack.
func (m *machine) top(i int) token {
	return m.st[len(m.st)-1-i]
}
