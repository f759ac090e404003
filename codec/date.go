package codec

import (
	"fmt"
	"time"

	derbyjson "github.com/crzwdjk/derbyjson"
)

// dateLayout is the wire form of roster and game dates.
const dateLayout = "2006-01-02"

// ParseDate converts a DerbyJSON date string into a time.Time at midnight
// UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, derbyjson.Issues{{Path: "/", Code: derbyjson.CodeInvalidFormat, Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s), Cause: err}}
	}
	return t, nil
}

// FormatDate renders a time in the canonical date wire form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
