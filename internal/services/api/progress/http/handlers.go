// Package http provides the delivery progress endpoint
package http

import (
	stdhttp "net/http"

	"cadastro/internal/core/progress"
	"cadastro/internal/modkit/httpkit"
)

// ProgressInput holds delivered and promised counts
type ProgressInput struct {
	Entregues  int `json:"entregues"  validate:"min=0" example:"30"`
	Prometidas int `json:"prometidas" validate:"min=0" example:"40"`
}

// Register mounts the progress route at the module root
func Register(r httpkit.Router) {
	httpkit.PostJSON(r, "/", compute)
}

// swagger:route POST /progress Progress progressCompute
// @Summary Delivered over promised percentage and band
// @Tags Progress
// @Accept json
// @Produce json
// @Param payload body ProgressInput true "Counts"
// @Success 200 {object} progress.Progress "ok"
// @Router /progress [post]
func compute(_ *stdhttp.Request, in ProgressInput) (any, error) {
	return progress.Compute(in.Entregues, in.Prometidas), nil
}
