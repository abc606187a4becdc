// Package http provides the display name endpoint
package http

import (
	stdhttp "net/http"

	"cadastro/internal/core/profile"
	"cadastro/internal/modkit/httpkit"
)

// NameInput is the name a person typed
type NameInput struct {
	Nome string `json:"nome" validate:"max=200" example:"ana maria"`
}

// Register mounts the profile routes
func Register(r httpkit.Router) {
	httpkit.PostJSON(r, "/name", checkName)
}

// swagger:route POST /profile/name Profile profileName
// @Summary Validate a display name and derive its initials
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body NameInput true "Name"
// @Success 200 {object} profile.NameCheck "ok"
// @Router /profile/name [post]
func checkName(_ *stdhttp.Request, in NameInput) (any, error) {
	return profile.CheckName(in.Nome), nil
}
