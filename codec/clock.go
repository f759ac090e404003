// Package codec converts between DerbyJSON scalar wire forms and richer Go
// types: game-clock strings ("30:00") and roster dates ("2006-01-02").
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	derbyjson "github.com/crzwdjk/derbyjson"
)

// ParseClock converts a DerbyJSON clock string ("MM:SS", minutes unbounded)
// into a duration. Ruleset period/jam/lineup/timeout/penalty members use
// this form.
func ParseClock(s string) (time.Duration, error) {
	mm, ss, ok := strings.Cut(s, ":")
	if !ok {
		return 0, derbyjson.Issues{{Path: "/", Code: derbyjson.CodeInvalidFormat, Message: fmt.Sprintf("invalid clock %q, want MM:SS", s)}}
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 {
		return 0, derbyjson.Issues{{Path: "/", Code: derbyjson.CodeInvalidFormat, Message: fmt.Sprintf("invalid clock minutes %q", mm), Cause: err}}
	}
	sec, err := strconv.Atoi(ss)
	if err != nil || sec < 0 || sec > 59 || len(ss) != 2 {
		return 0, derbyjson.Issues{{Path: "/", Code: derbyjson.CodeInvalidFormat, Message: fmt.Sprintf("invalid clock seconds %q", ss), Cause: err}}
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// FormatClock renders a duration in the canonical "MM:SS" wire form.
// Sub-second precision is truncated.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
