package config

import (
	"testing"
	"time"

	kit "cadastro/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_API_")
	if got := api.key("SWAGGER"); got != "CORE_API_SWAGGER" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_SWAGGER")
	}
	if got := api.Prefix("CORS_").key("ORIGINS"); got != "CORE_API_CORS_ORIGINS" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  cadastro ")
	if got := c.MustString("NAME"); got != "cadastro" {
		t.Fatalf("MustString = %q, want %q", got, "cadastro")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayValues(t *testing.T) {
	c := New().Prefix("T_")

	t.Setenv("T_PORT", " :8080 ")
	if got := c.MayString("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NOPE", ":4000"); got != ":4000" {
		t.Fatalf("MayString default = %q", got)
	}

	t.Setenv("T_MAX", "250")
	t.Setenv("T_BADINT", "many")
	if c.MayInt("MAX", 1) != 250 || c.MayInt("BADINT", 7) != 7 || c.MayInt("NOPE", 3) != 3 {
		t.Fatalf("MayInt branches drifted")
	}

	t.Setenv("T_ON", "true")
	t.Setenv("T_BADBOOL", "sometimes")
	if !c.MayBool("ON", false) || !c.MayBool("BADBOOL", true) || c.MayBool("NOPE", false) {
		t.Fatalf("MayBool branches drifted")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_SLOW_MS", "500")
	t.Setenv("D_TIMEOUT", "2s")
	t.Setenv("D_BAD", "soon")

	if got := c.MayDuration("SLOW_MS", 0); got != 500*time.Millisecond {
		t.Fatalf("bare int = %v", got)
	}
	if got := c.MayDuration("TIMEOUT", 0); got != 2*time.Second {
		t.Fatalf("duration = %v", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("invalid falls back = %v", got)
	}
	if got := c.MayDuration("NOPE", time.Hour); got != time.Hour {
		t.Fatalf("missing falls back = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	t.Setenv("C_ORIGINS", " https://a.example , ,https://b.example ")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("C_BLANK", " , , ")
	if got := c.MayCSV("BLANK", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV all blank = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_LOCALE", "PT_br")
	if got := c.MayEnum("LOCALE", "en", "en", "pt_BR"); got != "pt_BR" {
		t.Fatalf("MayEnum = %q, want canonical pt_BR", got)
	}
	if got := c.MayEnum("NOPE", "en", "en", "pt_BR"); got != "en" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_BAD", "fr")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "en", "en", "pt_BR") })
}
