package codec_test

import (
	"testing"
	"time"

	derbyjson "github.com/crzwdjk/derbyjson"
	"github.com/crzwdjk/derbyjson/codec"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"30:00", 30 * time.Minute},
		{"2:00", 2 * time.Minute},
		{"0:30", 30 * time.Second},
		{"1:05", time.Minute + 5*time.Second},
		{"90:00", 90 * time.Minute},
	}
	for _, tc := range cases {
		got, err := codec.ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, in := range []string{"", "30", "30:60", "30:5", "-1:00", "1:-5", "a:bc", "1:2:3"} {
		_, err := codec.ParseClock(in)
		if err == nil {
			t.Fatalf("ParseClock(%q) should fail", in)
		}
		iss, ok := derbyjson.AsIssues(err)
		if !ok || !iss.HasCode(derbyjson.CodeInvalidFormat) {
			t.Fatalf("ParseClock(%q): expected invalid_format, got %v", in, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "30:00"},
		{2*time.Minute + 5*time.Second, "2:05"},
		{90 * time.Minute, "90:00"},
		{-time.Second, "0:00"},
		{time.Second + 999*time.Millisecond, "0:01"},
	}
	for _, tc := range cases {
		if got := codec.FormatClock(tc.in); got != tc.want {
			t.Fatalf("FormatClock(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, s := range []string{"30:00", "2:05", "0:59", "120:01"} {
		d, err := codec.ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := codec.FormatClock(d); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}
