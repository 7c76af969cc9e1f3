package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"desawisata/internal/models/request_models"
	"desawisata/pkg/utils"
)

// OrderValidator checks booking input before anything is persisted.
// It is pure: no side effects, and every invalid field is collected so
// the caller can report all of them in one response.
type OrderValidator struct {
	v *validator.Validate
}

func NewOrderValidator() *OrderValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("idphone", isIndonesianMobile)
	_ = v.RegisterValidation("visitdate", isFutureVisitDate)

	return &OrderValidator{v: v}
}

// ValidateOrder returns nil when the request is valid, otherwise a
// ValidationErrors with one entry per invalid field.
func (ov *OrderValidator) ValidateOrder(req request_models.CreateOrderRequest) error {
	err := ov.v.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return utils.ValidationErrors{{Field: "request", Reason: "malformed request"}}
	}

	out := make(utils.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, utils.FieldError{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid4":
		return "must be a valid id"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "idphone":
		return "must be an Indonesian mobile number (08, 62 or +62, 9-13 digits)"
	case "visitdate":
		return "must be a date (YYYY-MM-DD) later than today"
	default:
		return "is invalid"
	}
}

// isIndonesianMobile accepts local mobile numbers: leading 08, 62 or
// +62, digits only, 9-13 digits in total.
func isIndonesianMobile(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	digits := strings.TrimPrefix(phone, "+")

	if !strings.HasPrefix(digits, "08") && !strings.HasPrefix(digits, "62") {
		return false
	}
	if len(digits) < 9 || len(digits) > 13 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isFutureVisitDate accepts YYYY-MM-DD strictly later than today in WIB.
func isFutureVisitDate(fl validator.FieldLevel) bool {
	visit, err := utils.ParseVisitDate(fl.Field().String())
	if err != nil {
		return false
	}
	return visit.After(utils.TodayJakarta())
}
