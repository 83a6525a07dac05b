package logger

import (
	"fmt"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int
	repeats int
	pattern *regexp.Regexp
	seen    *hashmap.HashMap
)

func init() {
	seen = &hashmap.HashMap{}
}

func SetLevel(l int) {
	level = l
}

// SetLimiter caps how many times the same rendered line is written.
// Zero means unlimited.
func SetLimiter(max int) {
	repeats = max
}

// SetFilter drops every line the pattern does not match. An empty
// pattern clears the filter.
func SetFilter(expr string) error {
	if expr == "" {
		pattern = nil
		return nil
	}
	reg, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	pattern = reg
	return nil
}

func Errorf(format string, v ...interface{}) {
	outputAt(ERROR, format, v...)
}

func Printf(format string, v ...interface{}) {
	outputAt(INFO, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	outputAt(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	outputAt(DEBUG, format, v...)
}

func outputAt(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := render(format, v...)
	if out == "" {
		return
	}
	if exhausted(out) {
		return
	}
	log.Print(out)
}

func render(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if pattern != nil && !pattern.MatchString(out) {
		return ""
	}
	return out
}

func exhausted(out string) bool {
	if repeats == 0 {
		return false
	}
	var fresh int64
	val, _ := seen.GetOrInsert(out, &fresh)
	count := (val).(*int64)
	return atomic.AddInt64(count, 1) > int64(repeats)
}
