package derbyjson

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	// UnknownDefault keeps the per-shape defaults: general documents pass
	// unknown top-level keys through into Extra, roster documents reject
	// them, nested objects drop them.
	UnknownDefault     UnknownPolicy = iota
	UnknownStrict                    // Reject unknown keys with an error.
	UnknownStrip                     // Drop unknown keys everywhere.
	UnknownPassthrough               // Preserve unknown top-level keys.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate JSON keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// DecodeOpt bundles decoding options. The zero value gives the
// forward-compatible defaults: unknown keys pass through, duplicate keys
// are ignored, all issues are collected.
type DecodeOpt struct {
	Unknown    UnknownPolicy
	Strictness Strictness
	// FailFast stops at the first issue instead of collecting all of them.
	FailFast bool
	// MaxIssues caps collection; <=0 means unlimited. When the cap is hit a
	// trailing truncated issue is appended.
	MaxIssues int
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// Indent, when non-empty, pretty-prints with the given indent string.
	Indent string
	// SkipInvariants suppresses the encode-side invariant check. The output
	// may then fail to re-decode.
	SkipInvariants bool
}

func pickDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DecodeOpt{}
}

func pickEncodeOpt(opts []EncodeOpt) EncodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return EncodeOpt{}
}
