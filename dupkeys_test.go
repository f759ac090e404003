package derbyjson_test

import (
	"strings"
	"testing"

	derbyjson "github.com/crzwdjk/derbyjson"
)

func TestDetectDuplicateKeys(t *testing.T) {
	src := `{"type":"rosters","teams":{"home":{"name":"x","name":"y"}},"type":"game"}`
	iss, err := derbyjson.DetectDuplicateKeys([]byte(src), derbyjson.Strictness{OnDuplicateKey: derbyjson.Warn}, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 duplicates, got %d: %v", len(iss), iss)
	}
	if _, ok := iss.At("/teams/home/name"); !ok {
		t.Fatalf("nested duplicate path wrong: %v", iss)
	}
	if _, ok := iss.At("/type"); !ok {
		t.Fatalf("top-level duplicate path wrong: %v", iss)
	}
}

func TestDetectDuplicateKeysZeroCapMeansUnlimited(t *testing.T) {
	src := `{"a":1,"a":2,"b":1,"b":2}`
	iss, err := derbyjson.DetectDuplicateKeys([]byte(src), derbyjson.Strictness{OnDuplicateKey: derbyjson.Warn}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("maxIssues 0 should collect everything, got %v", iss)
	}
	if iss.HasCode(derbyjson.CodeTruncated) {
		t.Fatalf("no truncation expected: %v", iss)
	}
}

func TestDetectDuplicateKeysIgnore(t *testing.T) {
	src := `{"a":1,"a":2}`
	iss, err := derbyjson.DetectDuplicateKeys([]byte(src), derbyjson.Strictness{}, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("ignore severity should report nothing, got %v", iss)
	}
}

func TestDetectDuplicateKeysInArray(t *testing.T) {
	src := `{"persons":[{"name":"a"},{"name":"b","name":"c"}]}`
	iss, err := derbyjson.DetectDuplicateKeys([]byte(src), derbyjson.Strictness{OnDuplicateKey: derbyjson.Warn}, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := iss.At("/persons/1/name"); !ok {
		t.Fatalf("array element duplicate path wrong: %v", iss)
	}
}

func TestDetectDuplicateKeysReader(t *testing.T) {
	src := `{"a":1,"a":2}`
	iss, err := derbyjson.DetectDuplicateKeysReader(strings.NewReader(src), derbyjson.Strictness{OnDuplicateKey: derbyjson.Warn}, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 1 || iss[0].Code != derbyjson.CodeDuplicateKey {
		t.Fatalf("expected one duplicate_key, got %v", iss)
	}
}
