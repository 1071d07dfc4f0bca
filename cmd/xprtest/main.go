// Command xprtest runs evaluator case files. See package casefile for the
// format. It exits with status 1 if any case fails.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/xpr"
	"github.com/zephyrtronium/xpr/internal/casefile"
)

func main() {
	var (
		level string
		limit int
	)
	flag.StringVar(&level, "loglevel", "info", "log level; verbose prints each case as it runs")
	flag.IntVar(&limit, "limit", xpr.DefaultStackLimit, "input length at which evaluation stacks move to the heap")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	lvl, err := log.ValidateLevel(level)
	if err != nil {
		log.Fatalf("bad -loglevel: %v", err)
	}
	log.SetLogLevel(lvl)

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	var total, failed int
	for _, name := range files {
		n, f, err := runFile(name, xpr.StackLimit(limit))
		total += n
		failed += f
		if err != nil {
			log.Errf("%v", err)
			failed++
		}
	}
	log.Infof("%d cases, %d failed", total, failed)
	if failed != 0 {
		os.Exit(1)
	}
}

// runFile runs every case in a file. Malformed lines count as failures.
func runFile(name string, opts ...xpr.Option) (total, failed int, err error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, 0, errors.Wrap(err, "opening case file")
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(casefile.NewReader(r))
	sc.Buffer(nil, 1<<20)
	n := 0
	for sc.Scan() {
		n++
		c, ok, err := casefile.ParseLine(n, sc.Text())
		if err != nil {
			log.Errf("%s: %v", name, err)
			failed++
			continue
		}
		if !ok {
			continue
		}
		total++
		log.LogVf("[%v] %s", c.Mode, c.Expr)
		if err := c.Run(opts...); err != nil {
			log.Errf("%s:%v", name, err)
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		return total, failed, errors.Wrapf(err, "reading %s", name)
	}
	return total, failed, nil
}
