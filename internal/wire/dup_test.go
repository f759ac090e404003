package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/crzwdjk/derbyjson/internal/wire"
)

func TestDetectDuplicateKeysPaths(t *testing.T) {
	src := `{
	  "teams": {
	    "home": {"name": "x", "name": "y"},
	    "away": {"persons": [{"number": "1", "number": "2"}]}
	  }
	}`
	iss, err := wire.DetectDuplicateKeysBytes([]byte(src), wire.DupWarn, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		if it.Code != "duplicate_key" {
			t.Fatalf("unexpected code %q", it.Code)
		}
		paths[it.Path] = true
	}
	if !paths["/teams/home/name"] || !paths["/teams/away/persons/0/number"] {
		t.Fatalf("wrong paths: %v", paths)
	}
}

func TestDetectDuplicateKeysErrorStopsEarly(t *testing.T) {
	src := `{"a":1,"a":2,"b":1,"b":2}`
	iss, err := wire.DetectDuplicateKeysBytes([]byte(src), wire.DupError, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("error mode should stop at the first duplicate, got %v", iss)
	}
}

func TestDetectDuplicateKeysMaxIssues(t *testing.T) {
	src := `{"a":1,"a":2,"b":1,"b":2,"c":1,"c":2}`
	iss, err := wire.DetectDuplicateKeysBytes([]byte(src), wire.DupWarn, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 3 { // 2 collected + truncated marker
		t.Fatalf("expected 3 issues, got %d: %v", len(iss), iss)
	}
	if iss[len(iss)-1].Code != "truncated" {
		t.Fatalf("missing truncated marker: %v", iss)
	}
}

func TestDetectDuplicateKeysIgnoreMode(t *testing.T) {
	iss, err := wire.DetectDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), wire.DupIgnore, -1)
	if err != nil || iss != nil {
		t.Fatalf("ignore mode should do nothing: %v %v", iss, err)
	}
}

func TestDecodeAnyUsesNumbers(t *testing.T) {
	v, err := wire.DecodeAny([]byte(`{"n": 28.5, "i": 3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if n, ok := m["n"].(json.Number); !ok || n != "28.5" {
		t.Fatalf("expected json.Number 28.5, got %T %v", m["n"], m["n"])
	}
	if i, ok := m["i"].(json.Number); !ok || i != "3" {
		t.Fatalf("expected json.Number 3, got %T %v", m["i"], m["i"])
	}
}
