package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkPayload runs the struct's `validate` tags and converts the first
// failures into a validation-class error. It never touches the network.
func checkPayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &api.Error{Kind: api.KindValidation, Message: err.Error()}
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", strings.ToLower(fe.Field())))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return &api.Error{Kind: api.KindValidation, Message: strings.Join(parts, "; ")}
}
