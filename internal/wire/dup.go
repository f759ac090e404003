package wire

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         *Path // path of the container itself
	valuePath    *Path // object frames: path of the value after the last key
	index        int   // array frames: index of the next element
}

// DetectDuplicateKeysBytes detects duplicate object keys in a JSON byte
// slice. If onDup is DupIgnore, no issues are produced. maxIssues < 0 means
// unlimited; 0 disables collection; >0 sets a limit, with a trailing
// "truncated" marker once reached.
func DetectDuplicateKeysBytes(data []byte, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	return detectDuplicateKeys(j.NewDecoder(bytes.NewReader(data)), onDup, maxIssues)
}

// DetectDuplicateKeysReader detects duplicate object keys from an io.Reader.
// The reader is consumed fully.
func DetectDuplicateKeysReader(r io.Reader, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	return detectDuplicateKeys(j.NewDecoder(r), onDup, maxIssues)
}

func detectDuplicateKeys(dec *j.Decoder, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []dupFrame
	truncated := false

	appendIssue := func(i SimpleIssue) {
		if maxIssues == 0 || truncated {
			return
		}
		issues = append(issues, i)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			truncated = true
		}
	}

	// Path the next value will occupy, given the current top of stack.
	nextValuePath := func() *Path {
		if len(stack) == 0 {
			return Root()
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			return top.path.Index(top.index)
		}
		return top.valuePath
	}

	// Bookkeeping after a complete value has been consumed.
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject {
				top.expectingKey = true
			} else {
				top.index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			appendIssue(SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			break
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: nextValuePath()})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: nextValuePath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						appendIssue(SimpleIssue{Code: "duplicate_key", Path: top.path.Field(v).Pointer(), Message: "key '" + v + "' duplicated"})
						if onDup == DupError {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					top.valuePath = top.path.Field(v)
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}

	return issues, nil
}
