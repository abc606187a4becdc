package bind

import (
	"cadastro/internal/core/brdoc"
	"cadastro/internal/core/profile"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// messages holds the translations this package adds on top of the validator defaults
var messages = map[string]map[string]string{
	LocaleEN: {
		"min":     "{0} must be at least {1}",
		"max":     "{0} must be at most {1}",
		"cpf":     "{0} must be a valid CPF",
		"celular": "{0} must be a mobile number with a valid area code",
		"ddd":     "{0} must be a valid area code",
		"nome":    "{0} must have at least 3 letters and only letters and spaces",
	},
	LocalePTBR: {
		"min":     "{0} deve ser no mínimo {1}",
		"max":     "{0} deve ser no máximo {1}",
		"cpf":     "{0} deve ser um CPF válido",
		"celular": "{0} deve ser um celular com DDD válido",
		"ddd":     "{0} deve ser um DDD válido",
		"nome":    "{0} deve ter ao menos 3 letras e conter apenas letras e espaços",
	},
}

// documentTags maps tag names to their checks, all apply to string fields
var documentTags = map[string]func(string) bool{
	"cpf":     brdoc.IsValidCPF,
	"celular": brdoc.IsValidMobilePhone,
	"ddd":     isDDD,
	"nome":    profile.IsValidName,
}

// isDDD takes the field as sent, exactly two digits
func isDDD(s string) bool {
	return len(s) == 2 && brdoc.IsValidDDD(s)
}

func registerDocumentTags(v *validator.Validate, trans ut.Translator, locale string) {
	for tag, check := range documentTags {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		text := messages[locale][tag]
		_ = v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error { return ut.Add(tag, text, true) },
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T(fe.Tag(), fe.Field())
				return msg
			},
		)
	}
}
