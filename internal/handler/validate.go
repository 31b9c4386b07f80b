package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// validateStruct returns one message per offending field, for the form to
// render inline.
func validateStruct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed rule: " + fe.Tag()
		}
	} else {
		fields["_"] = err.Error()
	}
	return fields
}
