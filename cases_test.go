package xpr_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/xpr"
	"github.com/zephyrtronium/xpr/internal/casefile"
)

func TestCaseFile(t *testing.T) {
	f, err := os.Open("testdata/cases.txt")
	require.NoError(t, err)
	defer f.Close()
	cases, err := casefile.Parse(f)
	require.NoError(t, err)
	require.NotEmpty(t, cases)
	policies := []struct {
		name string
		opts []xpr.Option
	}{
		{"default", nil},
		{"local", []xpr.Option{xpr.StackLimit(0)}},
		{"heap", []xpr.Option{xpr.StackLimit(1)}},
	}
	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			for _, c := range cases {
				if err := c.Run(p.opts...); err != nil {
					t.Error(err)
				}
			}
		})
	}
}
