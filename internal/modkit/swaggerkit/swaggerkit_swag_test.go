//go:build swag

package swaggerkit

import "testing"

func TestGeneratedDoc_CarriesRoutesAndSchemas(t *testing.T) {
	spec, err := prepare(docReader())
	if err != nil {
		t.Fatalf("generated doc: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/meta/health", "/documents/cpf/validate", "/documents/batch", "/profile/name", "/progress"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("doc misses %s", p)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	for _, s := range []string{"domain.BatchInput", "brdoc.Check", "profile.NameCheck", "progress.Progress", "ErrorResponse"} {
		if _, ok := schemas[s]; !ok {
			t.Fatalf("doc misses schema %s", s)
		}
	}
}
