package codec_test

import (
	"testing"
	"time"

	derbyjson "github.com/crzwdjk/derbyjson"
	"github.com/crzwdjk/derbyjson/codec"
)

func TestParseDate(t *testing.T) {
	got, err := codec.ParseDate("2026-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, in := range []string{"", "14-03-2026", "2026/03/14", "2026-13-01", "yesterday"} {
		_, err := codec.ParseDate(in)
		if err == nil {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
		iss, ok := derbyjson.AsIssues(err)
		if !ok || !iss.HasCode(derbyjson.CodeInvalidFormat) {
			t.Fatalf("ParseDate(%q): expected invalid_format, got %v", in, err)
		}
	}
}

func TestFormatDate(t *testing.T) {
	in := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.FixedZone("JST", 9*3600))
	if got := codec.FormatDate(in); got != "2026-03-14" {
		t.Fatalf("got %q", got)
	}
}
