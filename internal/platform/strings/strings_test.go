package strings

import (
	"testing"

	kit "cadastro/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	in := []string{"GET"}
	if got := IfEmpty(in, []string{"POST"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty replaced a non-empty slice: %#v", got)
	}
	var empty []string
	if got := IfEmpty(empty, []string{"POST"}); len(got) != 1 || got[0] != "POST" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("documents", "module name"); got != "documents" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustString("  ", "module name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"documents":     "/documents",
		"/documents/":   "/documents",
		" //profile// ": "/profile",
		"/a/b":          "/a/b",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
	kit.MustPanic(t, func() { _ = MustPrefix("") })
}
