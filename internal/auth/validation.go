package auth

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// loginMessages maps "<field>.<tag>" to the message shown on the login form.
var loginMessages = map[string]string{
	"email.required":    "Email is required",
	"email.email":       "The email is invalid",
	"password.required": "Password is required",
}

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd // name,options
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	return validate
}

// ValidateLogin checks the credentials before anything is sent. The returned
// error is an *admin.ValidationError keyed by JSON field name.
func ValidateLogin(validate *validator.Validate, credentials *admin.LoginRequest) error {
	if credentials == nil {
		return &admin.ValidationError{Fields: map[string][]string{
			"email":    {loginMessages["email.required"]},
			"password": {loginMessages["password.required"]},
		}}
	}

	err := validate.Struct(credentials)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	fields := make(map[string][]string, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		message, ok := loginMessages[fieldErr.Field()+"."+fieldErr.Tag()]
		if !ok {
			message = fieldErr.Error()
		}

		fields[fieldErr.Field()] = append(fields[fieldErr.Field()], message)
	}

	return &admin.ValidationError{Fields: fields}
}
