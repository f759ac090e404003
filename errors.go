package derbyjson

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError           = "parse_error"           // input is not well-formed JSON/YAML
	CodeInvalidType          = "invalid_type"          // field present with an incompatible type
	CodeRequired             = "required"              // required field missing
	CodeUnknownKey           = "unknown_key"           // unknown key under a strict object
	CodeDuplicateKey         = "duplicate_key"         // duplicate JSON object key
	CodeInvalidEnum          = "invalid_enum"          // value outside a closed enum set
	CodeInvalidFormat        = "invalid_format"        // malformed uuid, date, or clock string
	CodeDiscriminatorMissing = "discriminator_missing" // tagged union without its tag
	CodeDiscriminatorUnknown = "discriminator_unknown" // tag outside the closed tag table
	CodeInvalidVersion       = "invalid_version"       // document version other than "0.2"
	CodeInvariant            = "invariant"             // encode-side invariant violation
	CodeTruncated            = "truncated"             // issue collection hit its cap
)

// Issue represents a single schema violation.
type Issue struct {
	Path    string // JSON Pointer (for example: /teams/home/persons/2/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected tag sets, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"skaters"}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of schema violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /teams/home/name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether any issue in the collection carries the code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// At returns the first issue at the given JSON Pointer, if any.
func (iss Issues) At(path string) (Issue, bool) {
	for _, it := range iss {
		if it.Path == path {
			return it, true
		}
	}
	return Issue{}, false
}

func singleIssue(path, code, msg string) Issues {
	return Issues{{Path: path, Code: code, Message: msg}}
}
