package http

import (
	"burger/internal/generated/servers"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator. The generated
// request bodies carry no tags, so their rules are registered by field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the rules for every request body.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidationMapRules(map[string]string{
		"IngredientId": "required",
	}, servers.AddIngredientRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"From": "gte=0",
		"To":   "gte=0",
	}, servers.MoveFillingRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"ReturnPath": "omitempty,startswith=/",
	}, servers.SubmitOrderRequest{})
	return &Validator{validate: v}
}

// Validate checks i against the registered rules.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
