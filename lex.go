package xpr

import (
	"errors"
	"strconv"
)

type tokenKind uint8

const (
	tokenNone tokenKind = iota
	// tokenSpace is a run of whitespace.
	tokenSpace
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a value: a number, variable, constant, or reduction result.
	tokenNum
	// tokenFunc is a function name.
	tokenFunc

	tokenPlus
	tokenMinus
	tokenMul
	tokenDiv
	tokenPow
	tokenOpen
	tokenClose
	tokenComma
)

// class is the broad category of a token.
type class uint8

const (
	classNone class = iota
	classValue
	classOp
	classFunc
)

func (k tokenKind) class() class {
	switch {
	case k == tokenNum:
		return classValue
	case k == tokenFunc:
		return classFunc
	case k >= tokenPlus:
		return classOp
	}
	return classNone
}

// strength is a binding strength. Reduction continues while the strength of
// the top of the stack exceeds the floor.
type strength int8

const (
	bsNone strength = iota
	bsOpen
	bsPlus
	bsMul
	bsPow
	bsUnary
)

type assoc uint8

const (
	assocLeft assoc = iota
	assocRight
)

type token struct {
	kind tokenKind
	// bs is the binding strength. Operators carry their own; values, open
	// parentheses, and commas record the strength in effect when they were
	// pushed.
	bs    strength
	assoc assoc
	// canUnary marks + and -. unary is set when the operator is pushed with
	// no value to its left.
	canUnary bool
	unary    bool
	fn       funcID
	val      float64
	// pos is the 1-based position of the token's first byte.
	pos int
}

func (t token) class() class {
	return t.kind.class()
}

// operators maps operator characters to their tokens.
var operators = [...]token{
	'+': {kind: tokenPlus, bs: bsPlus, canUnary: true},
	'-': {kind: tokenMinus, bs: bsPlus, canUnary: true},
	'*': {kind: tokenMul, bs: bsMul},
	'/': {kind: tokenDiv, bs: bsMul},
	'^': {kind: tokenPow, bs: bsPow},
	'(': {kind: tokenOpen, bs: bsOpen},
	',': {kind: tokenComma, bs: bsOpen},
	')': {kind: tokenClose, bs: bsNone, assoc: assocRight},
}

// toUnary converts a + or - into its unary form.
func toUnary(t token) token {
	t.bs = bsUnary
	t.assoc = assocRight
	t.unary = true
	return t
}

type lexer struct {
	src  string
	vars []Var
	// off is the byte offset of the next token.
	off int
	eof bool
}

func lex(src string, vars []Var) *lexer {
	return &lexer{src: src, vars: vars}
}

// next scans the next token from the input. After the EOF token has been
// returned once, next panics.
func (l *lexer) next() (token, error) {
	if l.off >= len(l.src) {
		if l.eof {
			panic("xpr: token requested after EOF")
		}
		l.eof = true
		return token{kind: tokenEOF, pos: l.off + 1}, nil
	}
	c := l.src[l.off]
	switch {
	case c == '.', isDigit(c):
		return l.scanNum()
	case isAlpha(c):
		return l.scanIdent()
	case isSpace(c):
		tok := token{kind: tokenSpace, pos: l.off + 1}
		for l.off < len(l.src) && isSpace(l.src[l.off]) {
			l.off++
		}
		return tok, nil
	case int(c) < len(operators) && operators[c].kind != tokenNone:
		tok := operators[c]
		tok.pos = l.off + 1
		l.off++
		return tok, nil
	}
	err := &LexError{Text: l.src[l.off : l.off+1], Col: l.off + 1}
	l.off++
	return token{}, err
}

// scanNum scans a decimal floating-point literal: digits with an optional
// fraction and an optional exponent. An exponent marker not followed by
// digits is left for the next token.
func (l *lexer) scanNum() (token, error) {
	start := l.off
	s := l.src
	i := start
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	dig := i > start
	if i < len(s) && s[i] == '.' {
		i++
		f := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		dig = dig || i > f
	}
	if !dig {
		l.off = i
		return token{}, &LexError{Text: s[start:i], Kind: "number", Col: start + 1}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	l.off = i
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token{}, &LexError{Text: s[start:i], Kind: "number", Col: start + 1}
	}
	return token{kind: tokenNum, val: v, pos: start + 1}, nil
}

// scanIdent scans a name and resolves it to a variable, constant, or
// function, in that order.
func (l *lexer) scanIdent() (token, error) {
	start := l.off
	i := start + 1
	for i < len(l.src) && isAlnum(l.src[i]) {
		i++
	}
	l.off = i
	name := l.src[start:i]
	if v, ok := lookup(l.vars, name); ok {
		return token{kind: tokenNum, val: v, pos: start + 1}, nil
	}
	if v, ok := constants[name]; ok {
		return token{kind: tokenNum, val: v, pos: start + 1}, nil
	}
	if id, ok := funcnames[name]; ok {
		return token{kind: tokenFunc, fn: id, pos: start + 1}, nil
	}
	return token{}, &LexError{Text: name, Kind: "identifier", Col: start + 1}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (t token) String() string {
	switch t.kind {
	case tokenNone:
		return "[none]"
	case tokenSpace:
		return "[ ]"
	case tokenEOF:
		return "[eof]"
	case tokenNum:
		return strconv.Itoa(int(t.bs)) + "[" + strconv.FormatFloat(t.val, 'g', -1, 64) + "]"
	case tokenFunc:
		return catalog[t.fn].name
	case tokenPlus:
		if t.unary {
			return "U+"
		}
		return "+"
	case tokenMinus:
		if t.unary {
			return "U-"
		}
		return "-"
	case tokenMul:
		return "*"
	case tokenDiv:
		return "/"
	case tokenPow:
		return "^"
	case tokenOpen:
		return "("
	case tokenClose:
		return ")"
	case tokenComma:
		return ","
	}
	return "?" + strconv.Itoa(int(t.kind))
}
