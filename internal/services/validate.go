package services

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// validate is the shared struct validator. The custom "currency" rule accepts
// exactly three uppercase letters, matching the rate-creation contract.
var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currencyCodeRe.MatchString(fl.Field().String())
	})
	return v
}()

// checkStruct runs the validator and converts field errors into a single
// ValidationError listing every violated constraint.
func checkStruct(s any) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return newValidationError(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "currency":
			details = append(details, validationDetail(fe.Field(), "must be 3 uppercase letters (e.g., USD, EUR, BTC)"))
		case "oneof":
			details = append(details, validationDetail(fe.Field(), "must be one of: "+fe.Param()))
		case "required":
			details = append(details, validationDetail(fe.Field(), "is required"))
		case "min":
			details = append(details, validationDetail(fe.Field(), "must be at least "+fe.Param()))
		case "max":
			details = append(details, validationDetail(fe.Field(), "must be at most "+fe.Param()))
		default:
			details = append(details, validationDetail(fe.Field(), fmt.Sprintf("failed %q constraint", fe.Tag())))
		}
	}
	return newValidationError(details...)
}
