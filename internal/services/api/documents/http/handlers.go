// Package http provides http transport for documents
package http

import (
	stdhttp "net/http"
	"strconv"

	"cadastro/internal/modkit/httpkit"
	"cadastro/internal/services/api/documents/domain"
	svc "cadastro/internal/services/api/documents/service"
)

// Register mounts documents endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Route("/cpf", func(cpf httpkit.Router) {
		httpkit.PostJSON(cpf, "/mask", h.maskCPF)
		httpkit.PostJSON(cpf, "/validate", h.checkCPF)
		httpkit.PostJSON(cpf, "/check-digits", h.checkDigits)
	})
	r.Route("/phone", func(phone httpkit.Router) {
		httpkit.PostJSON(phone, "/mask", h.maskPhone)
		httpkit.PostJSON(phone, "/validate", h.checkPhone)
		httpkit.Get(phone, "/ddds", h.ddds)
	})
	httpkit.PostJSON(r, "/contact", h.contact)
	httpkit.PostJSON(r, "/batch", h.batch, httpkit.JSONOptions{MaxBytes: 4 << 20, DisallowUnknown: true})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /documents/cpf/mask Documents documentsMaskCPF
// @Summary Progressively mask a CPF
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Raw value"
// @Success 200 {object} domain.MaskOutput "ok"
// @Router /documents/cpf/mask [post]
func (h *handlers) maskCPF(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.MaskCPF(r.Context(), in)
}

// swagger:route POST /documents/cpf/validate Documents documentsCheckCPF
// @Summary Validate a CPF
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Raw value"
// @Success 200 {object} brdoc.Check "ok"
// @Router /documents/cpf/validate [post]
func (h *handlers) checkCPF(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.CheckCPF(r.Context(), in)
}

// swagger:route POST /documents/cpf/check-digits Documents documentsCheckDigits
// @Summary Complete a 9 digit base into a CPF
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.CheckDigitsInput true "Base"
// @Success 200 {object} domain.CheckDigitsOutput "ok"
// @Router /documents/cpf/check-digits [post]
func (h *handlers) checkDigits(r *stdhttp.Request, in domain.CheckDigitsInput) (any, error) {
	return h.svc.CheckDigits(r.Context(), in)
}

// swagger:route POST /documents/phone/mask Documents documentsMaskPhone
// @Summary Progressively mask a mobile phone
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Raw value"
// @Success 200 {object} domain.MaskOutput "ok"
// @Router /documents/phone/mask [post]
func (h *handlers) maskPhone(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.MaskPhone(r.Context(), in)
}

// swagger:route POST /documents/phone/validate Documents documentsCheckPhone
// @Summary Validate a mobile phone
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Raw value"
// @Success 200 {object} brdoc.Check "ok"
// @Router /documents/phone/validate [post]
func (h *handlers) checkPhone(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.CheckPhone(r.Context(), in)
}

// swagger:route GET /documents/phone/ddds Documents documentsDDDs
// @Summary List accepted area codes
// @Tags Documents
// @Produce json
// @Success 200 {object} domain.DDDsOutput "ok"
// @Header 200 {string} X-Total-Count "number of area codes"
// @Router /documents/phone/ddds [get]
func (h *handlers) ddds(r *stdhttp.Request) (any, error) {
	out, err := h.svc.DDDs(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Response{
		Status: stdhttp.StatusOK,
		Body:   out,
		Header: stdhttp.Header{"X-Total-Count": {strconv.Itoa(len(out.DDDs))}},
	}, nil
}

// swagger:route POST /documents/contact Documents documentsContact
// @Summary Validate a CPF and mobile pair
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.ContactInput true "Pair"
// @Success 200 {object} domain.ContactOutput "ok"
// @Router /documents/contact [post]
func (h *handlers) contact(r *stdhttp.Request, in domain.ContactInput) (any, error) {
	return h.svc.Contact(r.Context(), in)
}

// swagger:route POST /documents/batch Documents documentsBatch
// @Summary Check many records at once
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Records"
// @Success 200 {object} domain.BatchOutput "ok"
// @Router /documents/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}
