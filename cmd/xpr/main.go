package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/zephyrtronium/xpr"
)

func main() {
	var (
		verb, level    string
		lines, explain bool
		limit          int
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&lines, "lines", false, "prefix results of stdin expressions with their line numbers")
	flag.BoolVar(&explain, "explain", false, "print why failed expressions failed instead of NaN")
	flag.IntVar(&limit, "limit", xpr.DefaultStackLimit, "input length at which evaluation stacks move to the heap")
	flag.StringVar(&level, "loglevel", "info", "log level; verbose traces evaluation")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [name=value ...] [expr ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	lvl, err := log.ValidateLevel(level)
	if err != nil {
		log.Fatalf("bad -loglevel: %v", err)
	}
	log.SetLogLevel(lvl)
	if limit < 0 {
		log.Fatalf("stack limit (%d) must not be negative", limit)
	}
	opts := []xpr.Option{xpr.StackLimit(limit)}

	var (
		vars  []xpr.Var
		exprs []string
	)
	for _, arg := range flag.Args() {
		name, val, ok := strings.Cut(arg, "=")
		if !ok {
			exprs = append(exprs, arg)
			continue
		}
		name = strings.TrimSpace(name)
		if !xpr.ValidName(name) && name != xpr.StackLimitVar {
			log.Warnf("variable %q can never appear in an expression", name)
		}
		r, err := xpr.EvalErr(val, vars, opts...)
		if err != nil {
			log.Fatalf("setting %s: %v", name, err)
		}
		log.LogVf("%s = %g", name, r)
		// Lookups take the first match, so later definitions go in front.
		vars = append([]xpr.Var{{Name: name, Value: r}}, vars...)
	}

	verb += "\n"
	show := func(prefix, src string) {
		r, err := xpr.EvalErr(src, vars, opts...)
		if err != nil && explain {
			fmt.Printf("%s%v\n", prefix, err)
			return
		}
		fmt.Printf(prefix+verb, r)
	}
	for _, src := range exprs {
		show("", src)
	}
	if len(exprs) != 0 && !lines {
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(nil, 1<<20)
	for n := 1; sc.Scan(); n++ {
		prefix := ""
		if lines {
			prefix = fmt.Sprintf("%d: ", n)
		}
		show(prefix, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}
