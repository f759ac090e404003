package derbyjson

import (
	"io"

	"github.com/crzwdjk/derbyjson/internal/wire"
)

// DetectDuplicateKeys scans JSON text for duplicate object keys without
// decoding it into a document. Decode only rejects duplicates when
// Strictness.OnDuplicateKey is Error; this helper surfaces them as warnings
// for callers that want to lint input they would still accept. maxIssues
// follows the DecodeOpt convention: <=0 means unlimited.
func DetectDuplicateKeys(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	si, err := wire.DetectDuplicateKeysBytes(data, toWireDup(strict.OnDuplicateKey), dupIssueCap(maxIssues))
	if err != nil {
		return nil, err
	}
	return fromWireIssues(si), nil
}

// DetectDuplicateKeysReader is DetectDuplicateKeys over an io.Reader. The
// reader is consumed fully.
func DetectDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (Issues, error) {
	si, err := wire.DetectDuplicateKeysReader(r, toWireDup(strict.OnDuplicateKey), dupIssueCap(maxIssues))
	if err != nil {
		return nil, err
	}
	return fromWireIssues(si), nil
}

func toWireDup(s Severity) wire.DuplicateStrictness {
	switch s {
	case Error:
		return wire.DupError
	case Warn:
		return wire.DupWarn
	default:
		return wire.DupIgnore
	}
}
