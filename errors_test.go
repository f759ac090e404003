package derbyjson_test

import (
	"fmt"
	"testing"

	derbyjson "github.com/crzwdjk/derbyjson"
)

func TestIssuesError(t *testing.T) {
	iss := derbyjson.Issues{
		{Path: "/teams/home/name", Code: derbyjson.CodeRequired},
		{Path: "/uuid/0", Code: derbyjson.CodeInvalidFormat},
	}
	got := iss.Error()
	want := "required at /teams/home/name; invalid_format at /uuid/0"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIssuesErrorTruncatesSummary(t *testing.T) {
	var iss derbyjson.Issues
	for i := 0; i < 5; i++ {
		iss = derbyjson.AppendIssues(iss, derbyjson.Issue{
			Path: fmt.Sprintf("/teams/home/persons/%d/name", i),
			Code: derbyjson.CodeRequired,
		})
	}
	got := iss.Error()
	want := "required at /teams/home/persons/0/name; " +
		"required at /teams/home/persons/1/name; " +
		"required at /teams/home/persons/2/name; ... (total 5)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAsIssuesUnwraps(t *testing.T) {
	inner := derbyjson.Issues{{Path: "/", Code: derbyjson.CodeParseError}}
	wrapped := fmt.Errorf("loading roster: %w", inner)
	iss, ok := derbyjson.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Code != derbyjson.CodeParseError {
		t.Fatalf("AsIssues failed to unwrap: %v %v", iss, ok)
	}
	if _, ok := derbyjson.AsIssues(nil); ok {
		t.Fatalf("nil error should not yield issues")
	}
	if _, ok := derbyjson.AsIssues(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error should not yield issues")
	}
}

func TestIssuesHasCodeAndAt(t *testing.T) {
	iss := derbyjson.Issues{
		{Path: "/type", Code: derbyjson.CodeDiscriminatorMissing},
		{Path: "/teams", Code: derbyjson.CodeRequired},
	}
	if !iss.HasCode(derbyjson.CodeRequired) {
		t.Fatalf("HasCode missed required")
	}
	if iss.HasCode(derbyjson.CodeDuplicateKey) {
		t.Fatalf("HasCode false positive")
	}
	it, ok := iss.At("/teams")
	if !ok || it.Code != derbyjson.CodeRequired {
		t.Fatalf("At missed /teams: %v %v", it, ok)
	}
	if _, ok := iss.At("/nowhere"); ok {
		t.Fatalf("At false positive")
	}
}
