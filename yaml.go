package derbyjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML maps a YAML rendering of a DerbyJSON document into the typed
// tree. The YAML node tree is normalized to the same string-keyed shape the
// JSON path produces (numbers become json.Number) before the schema mapper
// runs, so both inputs share one set of rules.
func DecodeYAML(data []byte, opts ...DecodeOpt) (Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "malformed YAML", Cause: err}}
	}
	return decodeDocumentValue(yamlNormalizeValue(node), pickDecodeOpt(opts))
}

// EncodeYAML serializes a typed Document to YAML, running the same
// invariant check as Encode.
func EncodeYAML(w io.Writer, doc Document, opts ...EncodeOpt) error {
	opt := pickEncodeOpt(opts)
	if doc == nil {
		return singleIssue("/", CodeInvalidType, "nil document")
	}
	if !opt.SkipInvariants {
		if iss := ValidateDocument(doc); len(iss) > 0 {
			return iss
		}
	}
	var v map[string]any
	switch t := doc.(type) {
	case *Game:
		v = encodeGame(t)
	case *Rosters:
		v = encodeRosters(t)
	default:
		return singleIssue("/", CodeInvalidType, "unsupported document shape")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlizeValue(v)); err != nil {
		return Issues{{Path: "/", Code: CodeParseError, Message: "encode YAML", Cause: err}}
	}
	return enc.Close()
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return v
	}
}

// yamlizeValue turns json.Number leaves back into int/float so the YAML
// encoder emits plain scalars instead of quoted strings.
func yamlizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlizeValue(t[i])
		}
		return arr
	case []string:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = t[i]
		}
		return arr
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
