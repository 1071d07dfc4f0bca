// Command xprrnd evaluates random expressions to shake out crashes and hangs.
// It prints each result next to its expression.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/xpr"
	"github.com/zephyrtronium/xpr/internal/randexpr"
)

func main() {
	var (
		level   string
		seed    int64
		count   int
		timeout time.Duration
		valid   bool
	)
	flag.StringVar(&level, "loglevel", "info", "log level; verbose traces evaluation")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.IntVar(&count, "n", 0, "number of expressions to evaluate, or 0 to run forever")
	flag.DurationVar(&timeout, "timeout", time.Second, "longest any one evaluation may take")
	flag.BoolVar(&valid, "valid", false, "print only expressions that evaluate successfully")
	flag.Parse()
	lvl, err := log.ValidateLevel(level)
	if err != nil {
		log.Fatalf("bad -loglevel: %v", err)
	}
	log.SetLogLevel(lvl)

	log.Infof("seed: %d", seed)
	g := randexpr.New(seed)
	for i := 0; count == 0 || i < count; i++ {
		src := g.Next()
		r, err := eval(src, timeout)
		if err != nil {
			log.Errf("%v: %q", err, src)
			os.Exit(1)
		}
		if valid && xpr.IsErr(r) {
			continue
		}
		fmt.Printf("%-20g %s\n", r, src)
	}
}

type result struct {
	r     float64
	panic interface{}
}

// eval evaluates src, failing if evaluation panics or takes too long. A hung
// evaluation is abandoned along with its goroutine.
func eval(src string, timeout time.Duration) (float64, error) {
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				ch <- result{panic: p}
			}
		}()
		ch <- result{r: xpr.Eval(src, nil)}
	}()
	select {
	case res := <-ch:
		if res.panic != nil {
			return 0, errors.Errorf("evaluation panicked: %v", res.panic)
		}
		return res.r, nil
	case <-time.After(timeout):
		return 0, errors.Errorf("evaluation took longer than %v", timeout)
	}
}
