package xpr

import (
	"strconv"
	"strings"

	"fortio.org/log"
)

// trace logs a token as it is read, along with the stack it will be shifted
// onto. Tracing happens at verbose level only.
func (m *machine) trace(tok token) {
	if !log.LogVerbose() {
		return
	}
	log.LogVf("xpr: next %v  sp=%d %s bs=%d", tok, len(m.st), dumpStack(m.st), m.bs)
}

// traceStack logs the stack after a reduction.
func (m *machine) traceStack(what string) {
	if !log.LogVerbose() {
		return
	}
	log.LogVf("xpr: %s -> sp=%d %s", what, len(m.st), dumpStack(m.st))
}

func dumpStack(st []token) string {
	var b strings.Builder
	b.WriteByte('{')
	for _, t := range st {
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteString(" }")
	return b.String()
}

// traceResult logs the outcome of an evaluation.
func traceResult(src string, r float64, err error) {
	if !log.LogVerbose() {
		return
	}
	if err != nil {
		log.LogVf("xpr: %s failed: %v", strconv.Quote(src), err)
		return
	}
	log.LogVf("xpr: %s = %g", strconv.Quote(src), r)
}
