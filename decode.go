package derbyjson

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/crzwdjk/derbyjson/internal/wire"
)

// Decode maps DerbyJSON text to a typed Document. All schema violations are
// collected and returned together as Issues unless DecodeOpt.FailFast is
// set. Decode is pure; concurrent calls need no coordination.
func Decode(data []byte, opts ...DecodeOpt) (Document, error) {
	opt := pickDecodeOpt(opts)
	if opt.Strictness.OnDuplicateKey == Error {
		si, err := wire.DetectDuplicateKeysBytes(data, wire.DupError, dupIssueCap(opt.MaxIssues))
		if err != nil {
			return nil, singleIssue("/", CodeParseError, err.Error())
		}
		if iss := fromWireIssues(si); len(iss) > 0 {
			return nil, iss
		}
	}
	v, err := wire.DecodeAny(data)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "malformed JSON", Cause: err}}
	}
	return decodeDocumentValue(v, opt)
}

// DecodeReader is Decode over an io.Reader. The reader is consumed fully.
func DecodeReader(r io.Reader, opts ...DecodeOpt) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "read input", Cause: err}}
	}
	return Decode(data, opts...)
}

// LoadRosters decodes a roster document and checks that it really is one:
// the "type" member must be "rosters" and the version, when present, must
// match the spec revision this package tracks.
func LoadRosters(r io.Reader, opts ...DecodeOpt) (*Rosters, error) {
	doc, err := DecodeReader(r, opts...)
	if err != nil {
		return nil, err
	}
	ros, ok := doc.(*Rosters)
	if !ok {
		return nil, singleIssue("/type", CodeInvalidType, fmt.Sprintf("expected a rosters document, got %q", doc.Kind()))
	}
	if ros.Version != nil && *ros.Version != Version {
		return nil, singleIssue("/version", CodeInvalidVersion, fmt.Sprintf("unsupported DerbyJSON version %q", *ros.Version))
	}
	return ros, nil
}

// decodeDocumentValue dispatches on the top-level discriminant. The
// tag-to-shape table is closed: unknown types are a hard error, not a
// silently-ignored document.
func decodeDocumentValue(v any, opt DecodeOpt) (Document, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, singleIssue("/", CodeInvalidType, "top-level value must be an object")
	}
	tagRaw, ok := root["type"]
	if !ok {
		return nil, singleIssue("/type", CodeDiscriminatorMissing, `missing "type" member`)
	}
	tag, ok := tagRaw.(string)
	if !ok {
		return nil, singleIssue("/type", CodeInvalidType, `"type" must be a string`)
	}

	d := &dec{opt: opt}
	o := &obj{d: d, path: wire.Root(), m: root}
	o.mark("type")

	var doc Document
	switch ObjectType(tag) {
	case ObjectGame, ObjectStats, ObjectLeague:
		doc = decodeGameDoc(o, ObjectType(tag))
	case ObjectRosters:
		doc = decodeRosters(o)
	default:
		return nil, Issues{{
			Path:    "/type",
			Code:    CodeDiscriminatorUnknown,
			Message: fmt.Sprintf("unknown document type %q", tag),
			Hint:    `one of "game", "rosters", "stats", "league"`,
		}}
	}
	if len(d.iss) > 0 {
		if opt.FailFast {
			return nil, d.iss[:1]
		}
		return nil, d.iss
	}
	return doc, nil
}

// dupIssueCap translates the DecodeOpt convention (<=0 unlimited) to the
// wire-level one, where 0 disables collection.
func dupIssueCap(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

func fromWireIssues(si []wire.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}

// ---- collection state ----

type dec struct {
	opt       DecodeOpt
	iss       Issues
	truncated bool
}

func (d *dec) report(it Issue) {
	if d.truncated {
		return
	}
	d.iss = append(d.iss, it)
	if d.opt.MaxIssues > 0 && len(d.iss) >= d.opt.MaxIssues {
		d.iss = append(d.iss, Issue{Path: "/", Code: CodeTruncated, Message: "max issues reached"})
		d.truncated = true
	}
}

func (d *dec) reportAt(p *wire.Path, code, msg string) {
	d.report(Issue{Path: p.Pointer(), Code: code, Message: msg})
}

// stopped reports whether further walking is pointless: either the issue
// cap was hit or the caller asked for fail-fast and something is already
// recorded.
func (d *dec) stopped() bool {
	return d.truncated || (d.opt.FailFast && len(d.iss) > 0)
}

// ---- object reader ----

// obj wraps one wire object together with its path and tracks which keys
// the mapping consumed, so unknown-key handling can run at the end.
type obj struct {
	d    *dec
	path *wire.Path
	m    map[string]any
	seen map[string]struct{}
}

func (o *obj) mark(key string) {
	if o.seen == nil {
		o.seen = make(map[string]struct{})
	}
	o.seen[key] = struct{}{}
}

func (o *obj) get(key string) (any, bool) {
	o.mark(key)
	v, ok := o.m[key]
	return v, ok
}

func (o *obj) at(key string) *wire.Path { return o.path.Field(key) }

func (o *obj) wrongType(key, want string) {
	o.d.reportAt(o.at(key), CodeInvalidType, "expected "+want)
}

func (o *obj) missing(key string) {
	o.d.reportAt(o.at(key), CodeRequired, "required member missing")
}

func (o *obj) requiredString(key string) string {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.wrongType(key, "string")
		return ""
	}
	return s
}

func (o *obj) optString(key string) *string {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		o.wrongType(key, "string")
		return nil
	}
	return &s
}

func (o *obj) requiredBool(key string) bool {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return false
	}
	b, ok := v.(bool)
	if !ok {
		o.wrongType(key, "boolean")
		return false
	}
	return b
}

func (o *obj) optBool(key string) *bool {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		o.wrongType(key, "boolean")
		return nil
	}
	return &b
}

func (o *obj) intAt(key string, v any) (int, bool) {
	num, ok := v.(json.Number)
	if !ok {
		o.wrongType(key, "integer")
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		o.d.reportAt(o.at(key), CodeInvalidType, "expected integer, got "+num.String())
		return 0, false
	}
	return int(n), true
}

func (o *obj) requiredInt(key string) int {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return 0
	}
	n, _ := o.intAt(key, v)
	return n
}

func (o *obj) optInt(key string) *int {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil
	}
	n, ok := o.intAt(key, v)
	if !ok {
		return nil
	}
	return &n
}

// optNumber keeps loosely-specified numeric members as json.Number.
func (o *obj) optNumber(key string) json.Number {
	v, ok := o.get(key)
	if !ok || v == nil {
		return ""
	}
	num, ok := v.(json.Number)
	if !ok {
		o.wrongType(key, "number")
		return ""
	}
	return num
}

func (o *obj) requiredArray(key string) ([]any, *wire.Path) {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return nil, o.at(key)
	}
	arr, ok := v.([]any)
	if !ok {
		o.wrongType(key, "array")
		return nil, o.at(key)
	}
	return arr, o.at(key)
}

// optArray returns (elements, path, present). Absent members and nulls
// report present=false; a present-but-empty array reports present=true so
// the distinction survives a round trip.
func (o *obj) optArray(key string) ([]any, *wire.Path, bool) {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil, o.at(key), false
	}
	arr, ok := v.([]any)
	if !ok {
		o.wrongType(key, "array")
		return nil, o.at(key), false
	}
	return arr, o.at(key), true
}

func (o *obj) requiredObject(key string) (*obj, bool) {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.wrongType(key, "object")
		return nil, false
	}
	return &obj{d: o.d, path: o.at(key), m: m}, true
}

func (o *obj) optObject(key string) (*obj, bool) {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.wrongType(key, "object")
		return nil, false
	}
	return &obj{d: o.d, path: o.at(key), m: m}, true
}

// optMap returns a free-form object member verbatim (metadata buckets).
func (o *obj) optMap(key string) map[string]any {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.wrongType(key, "object")
		return nil
	}
	return m
}

func (o *obj) requiredMap(key string) map[string]any {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.wrongType(key, "object")
		return nil
	}
	return m
}

// strings decodes an optional array-of-strings member; absent gives nil,
// present gives a non-nil slice.
func (o *obj) strings(key string) []string {
	arr, path, ok := o.optArray(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected string")
			continue
		}
		out = append(out, s)
	}
	return out
}

func (o *obj) requiredStrings(key string) []string {
	arr, path := o.requiredArray(key)
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			o.d.reportAt(path.Index(i), CodeInvalidType, "expected string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// unknownKeys returns the keys the mapping never consumed, sorted for
// deterministic issue order.
func (o *obj) unknownKeys() []string {
	var keys []string
	for k := range o.m {
		if _, ok := o.seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// finishNested applies unknown-key handling for non-top-level objects:
// tolerant by default (an evolving 0.x spec grows fields), strict only on
// request.
func (o *obj) finishNested() {
	if o.d.opt.Unknown != UnknownStrict {
		return
	}
	for _, k := range o.unknownKeys() {
		o.d.report(Issue{Path: o.at(k).Pointer(), Code: CodeUnknownKey, Message: "unknown member", Params: map[string]any{"key": k}})
	}
}

// finishTop applies the top-level policy and returns the passthrough
// bucket, when any.
func (o *obj) finishTop(strictShape bool) map[string]any {
	policy := o.d.opt.Unknown
	if policy == UnknownDefault {
		if strictShape {
			policy = UnknownStrict
		} else {
			policy = UnknownPassthrough
		}
	}
	switch policy {
	case UnknownStrict:
		for _, k := range o.unknownKeys() {
			o.d.report(Issue{Path: o.at(k).Pointer(), Code: CodeUnknownKey, Message: "unknown member", Params: map[string]any{"key": k}})
		}
		return nil
	case UnknownPassthrough:
		var extra map[string]any
		for _, k := range o.unknownKeys() {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = o.m[k]
		}
		return extra
	default: // UnknownStrip
		return nil
	}
}

// enum decodes a closed string set via its tag table.
func enum[T ~string](o *obj, key string, v any, table []T) T {
	s, ok := v.(string)
	if !ok {
		o.wrongType(key, "string")
		return ""
	}
	for _, t := range table {
		if string(t) == s {
			return t
		}
	}
	o.d.report(Issue{
		Path:    o.at(key).Pointer(),
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("invalid value %q", s),
		Hint:    enumHint(table),
	})
	return ""
}

func requiredEnum[T ~string](o *obj, key string, table []T) T {
	v, ok := o.get(key)
	if !ok {
		o.missing(key)
		return ""
	}
	return enum(o, key, v, table)
}

func optEnum[T ~string](o *obj, key string, table []T) *T {
	v, ok := o.get(key)
	if !ok || v == nil {
		return nil
	}
	t := enum(o, key, v, table)
	if t == "" {
		return nil
	}
	return &t
}

func enumHint[T ~string](table []T) string {
	b := "one of "
	for i, t := range table {
		if i > 0 {
			b += ", "
		}
		b += fmt.Sprintf("%q", string(t))
	}
	return b
}
