package domain

import (
	"context"

	"cadastro/internal/core/brdoc"
)

// ServicePort defines the service contract for documents
type ServicePort interface {
	MaskCPF(ctx context.Context, in ValueInput) (MaskOutput, error)
	CheckCPF(ctx context.Context, in ValueInput) (brdoc.Check, error)
	CheckDigits(ctx context.Context, in CheckDigitsInput) (CheckDigitsOutput, error)

	MaskPhone(ctx context.Context, in ValueInput) (MaskOutput, error)
	CheckPhone(ctx context.Context, in ValueInput) (brdoc.Check, error)
	DDDs(ctx context.Context) (DDDsOutput, error)

	Contact(ctx context.Context, in ContactInput) (ContactOutput, error)
	Batch(ctx context.Context, in BatchInput) (BatchOutput, error)
}
