// Package service contains documents workflows
package service

import (
	"context"
	"strings"

	"cadastro/internal/core/brdoc"
	"cadastro/internal/core/profile"
	perr "cadastro/internal/platform/errors"
	"cadastro/internal/platform/logger"
	pnet "cadastro/internal/platform/net"
	"cadastro/internal/services/api/documents/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for documents
type Service interface{ domain.ServicePort }

// newID is a seam so tests can pin batch ids
var newID = uuid.NewString

// Svc implements the Service interface
type Svc struct {
	batchMax int
	log      *logger.Logger
}

// New creates a documents service, batchMax <= 0 falls back to domain.DefaultBatchMax
func New(batchMax int, log *logger.Logger) *Svc {
	if batchMax <= 0 {
		batchMax = domain.DefaultBatchMax
	}
	if log == nil {
		log = logger.Named("documents")
	}
	return &Svc{batchMax: batchMax, log: log}
}

// MaskCPF applies the progressive CPF mask
func (s *Svc) MaskCPF(_ context.Context, in domain.ValueInput) (domain.MaskOutput, error) {
	return domain.MaskOutput{Masked: brdoc.FormatCPFMask(in.Value)}, nil
}

// CheckCPF validates a CPF and reports why it failed
func (s *Svc) CheckCPF(_ context.Context, in domain.ValueInput) (brdoc.Check, error) {
	return brdoc.CheckCPF(in.Value), nil
}

// CheckDigits completes a 9 digit base into a valid CPF
func (s *Svc) CheckDigits(_ context.Context, in domain.CheckDigitsInput) (domain.CheckDigitsOutput, error) {
	dv, err := brdoc.CPFCheckDigits(in.Base)
	if err != nil {
		return domain.CheckDigitsOutput{}, perr.WithField(err, "base")
	}
	cpf := in.Base + dv
	return domain.CheckDigitsOutput{
		Base:        in.Base,
		CheckDigits: dv,
		CPF:         cpf,
		Formatted:   brdoc.FormatCPFMask(cpf),
	}, nil
}

// MaskPhone applies the progressive mobile phone mask
func (s *Svc) MaskPhone(_ context.Context, in domain.ValueInput) (domain.MaskOutput, error) {
	return domain.MaskOutput{Masked: brdoc.FormatPhoneMask(in.Value)}, nil
}

// CheckPhone validates a mobile phone and reports why it failed
func (s *Svc) CheckPhone(_ context.Context, in domain.ValueInput) (brdoc.Check, error) {
	return brdoc.CheckMobilePhone(in.Value), nil
}

// DDDs lists the accepted area codes
func (s *Svc) DDDs(context.Context) (domain.DDDsOutput, error) {
	return domain.DDDsOutput{DDDs: brdoc.DDDs()}, nil
}

// Contact renders an already validated pair in display form
func (s *Svc) Contact(_ context.Context, in domain.ContactInput) (domain.ContactOutput, error) {
	phone := brdoc.NormalizeDigits(in.Telefone)
	if in.DDD != "" && !strings.HasPrefix(phone, in.DDD) {
		return domain.ContactOutput{}, perr.WithField(
			perr.Validationf("telefone must use area code %s", in.DDD), "telefone")
	}
	return domain.ContactOutput{
		CPF:      brdoc.DisplayCPF(brdoc.NormalizeDigits(in.CPF)),
		Telefone: brdoc.DisplayPhone(phone),
	}, nil
}

// Batch checks every present field of every item
// stops early with the context error when ctx is cancelled
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	if len(in.Items) > s.batchMax {
		return domain.BatchOutput{}, perr.WithField(
			perr.InvalidArgf("batch holds %d items, limit is %d", len(in.Items), s.batchMax), "items")
	}

	out := domain.BatchOutput{
		BatchID: newID(),
		Total:   len(in.Items),
		Items:   make([]domain.BatchItemResult, 0, len(in.Items)),
	}
	for i, item := range in.Items {
		if err := ctx.Err(); err != nil {
			return domain.BatchOutput{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "batch cancelled")
		}
		res := checkItem(item)
		res.Index = i
		if res.Valid {
			out.Valid++
		} else {
			out.Invalid++
		}
		out.Items = append(out.Items, res)
	}

	evt := s.log.Info()
	if id := pnet.RequestID(ctx); id != "" {
		evt = evt.Str("request_id", id)
	}
	evt.Str("batch_id", out.BatchID).
		Int("total", out.Total).
		Int("invalid", out.Invalid).
		Msg("batch checked")
	return out, nil
}

// checkItem runs the checks for the fields present, an item with no fields is invalid
func checkItem(item domain.BatchItem) domain.BatchItemResult {
	var res domain.BatchItemResult
	valid, checked := true, false
	if item.CPF != nil {
		c := brdoc.CheckCPF(*item.CPF)
		res.CPF = &c
		valid, checked = valid && c.Valid, true
	}
	if item.Telefone != nil {
		c := brdoc.CheckMobilePhone(*item.Telefone)
		res.Telefone = &c
		valid, checked = valid && c.Valid, true
	}
	if item.Nome != nil {
		c := profile.CheckName(*item.Nome)
		res.Nome = &c
		valid, checked = valid && c.Valid, true
	}
	res.Valid = valid && checked
	return res
}
