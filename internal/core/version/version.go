// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"cadastro-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit"  example:"4f2c1e9"`
	Date    string `json:"date"    example:"2026-10-01"`
}

// Service is the name reported by the API and the CLI
const Service = "cadastro-api"

// Info returns the build information. version, commit and date are set at build time:
//
//	go build -ldflags "-X 'cadastro/internal/core/version.version=v0.3.0' -X 'cadastro/internal/core/version.commit=4f2c1e9'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
