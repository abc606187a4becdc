// Package domain holds DTOs for documents http and service contracts
package domain

import (
	"cadastro/internal/core/brdoc"
	"cadastro/internal/core/profile"
)

// DefaultBatchMax caps the items of one batch request unless configured otherwise
const DefaultBatchMax = 1000

// ValueInput carries a raw user typed value, anything goes since masking never rejects
type ValueInput struct {
	Value string `json:"value" validate:"max=256" example:"111.444.777-35"`
}

// MaskOutput is the progressively masked value
type MaskOutput struct {
	Masked string `json:"masked" example:"111.444.777-35"`
}

// CheckDigitsInput is a 9 digit CPF base
type CheckDigitsInput struct {
	Base string `json:"base" validate:"required,numeric,len=9" example:"111444777"`
}

// CheckDigitsOutput is the completed CPF for a base
type CheckDigitsOutput struct {
	Base        string `json:"base"         example:"111444777"`
	CheckDigits string `json:"check_digits" example:"35"`
	CPF         string `json:"cpf"          example:"11144477735"`
	Formatted   string `json:"formatted"    example:"111.444.777-35"`
}

// DDDsOutput lists every accepted area code
type DDDsOutput struct {
	DDDs []string `json:"ddds" example:"11,21,61"`
}

// ContactInput is the identity pair a registration form submits
// DDD, when sent, is the area code the phone must carry
type ContactInput struct {
	CPF      string `json:"cpf"           validate:"required,cpf"     example:"111.444.777-35"`
	Telefone string `json:"telefone"      validate:"required,celular" example:"(11) 9 8888-7777"`
	DDD      string `json:"ddd,omitempty" validate:"omitempty,ddd"    example:"11"`
}

// ContactOutput echoes the pair in display form
type ContactOutput struct {
	CPF      string `json:"cpf"      example:"111.444.777-35"`
	Telefone string `json:"telefone" example:"(11) 98888-7777"`
}

// BatchItem is one record of a batch, absent fields are not checked
type BatchItem struct {
	CPF      *string `json:"cpf,omitempty"      example:"11144477735"`
	Telefone *string `json:"telefone,omitempty" example:"11988887777"`
	Nome     *string `json:"nome,omitempty"     example:"Ana Maria"`
}

// BatchInput is a list of records to check
type BatchInput struct {
	Items []BatchItem `json:"items" validate:"required,min=1"`
}

// BatchItemResult holds the checks that ran for one record
type BatchItemResult struct {
	Index    int                `json:"index"              example:"0"`
	Valid    bool               `json:"valid"              example:"true"`
	CPF      *brdoc.Check       `json:"cpf,omitempty"`
	Telefone *brdoc.Check       `json:"telefone,omitempty"`
	Nome     *profile.NameCheck `json:"nome,omitempty"`
}

// BatchOutput summarizes a batch
type BatchOutput struct {
	BatchID string            `json:"batch_id" example:"5f0c3c1e-7d4a-4f35-9a57-0e5b1f1f2a10"`
	Total   int               `json:"total"    example:"2"`
	Valid   int               `json:"valid"    example:"1"`
	Invalid int               `json:"invalid"  example:"1"`
	Items   []BatchItemResult `json:"items"`
}
