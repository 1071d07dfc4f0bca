package xpr

import (
	"sort"
	"strings"
)

// Var is a named value supplied to an evaluation.
//
// A variable table is a slice of Vars searched in order. An entry with an
// empty Name ends the table; later entries are never consulted.
type Var struct {
	Name  string
	Value float64
}

// Vars converts a map to a variable table sorted by name.
func Vars(m map[string]float64) []Var {
	v := make([]Var, 0, len(m))
	for name, val := range m {
		v = append(v, Var{Name: name, Value: val})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Name < v[j].Name })
	return v
}

// lookup finds the first variable with the given name.
func lookup(vars []Var, name string) (float64, bool) {
	for _, v := range vars {
		if v.Name == "" {
			break
		}
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// ValidName reports whether s can be referenced as a variable in an
// expression. Variables with other names, like StackLimitVar, are accepted in
// tables but can never appear in expressions.
func ValidName(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r > 0x7f || !isAlnum(byte(r)) }) < 0
}
