package wire_test

import (
	"testing"

	"github.com/crzwdjk/derbyjson/internal/wire"
)

func TestPathPointer(t *testing.T) {
	cases := []struct {
		name string
		path *wire.Path
		want string
	}{
		{"root", wire.Root(), "/"},
		{"field", wire.Root().Field("teams"), "/teams"},
		{"nested", wire.Root().Field("teams").Field("home").Index(2), "/teams/home/2"},
		{"tilde escaped", wire.Root().Field("a~b"), "/a~0b"},
		{"slash escaped", wire.Root().Field("a/b"), "/a~1b"},
		{"both escaped", wire.Root().Field("~/"), "/~0~1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.Pointer(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPathImmutable(t *testing.T) {
	base := wire.Root().Field("teams")
	a := base.Field("home")
	b := base.Field("away")
	if a.Pointer() != "/teams/home" || b.Pointer() != "/teams/away" {
		t.Fatalf("derived paths interfered: %q %q", a.Pointer(), b.Pointer())
	}
	if base.Pointer() != "/teams" {
		t.Fatalf("base mutated: %q", base.Pointer())
	}
}
