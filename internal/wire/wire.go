// Package wire holds the token-level JSON machinery shared by the public
// decode entry points: building an any-tree from a goccy/go-json token
// stream, duplicate-key detection, and JSON Pointer construction.
package wire

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// SimpleIssue is a minimal issue representation used below the public error
// model. The root package converts these into derbyjson.Issue values.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// DecodeAny parses a single JSON value from data into map[string]any /
// []any / string / json.Number / bool / nil. Numbers are always preserved
// as json.Number; interpretation happens in the schema mapping layer.
func DecodeAny(data []byte) (any, error) {
	return DecodeAnyReader(bytes.NewReader(data))
}

// DecodeAnyReader is DecodeAny over an io.Reader.
func DecodeAnyReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
