package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bountyboard_backend/pkg/apperrors"
)

// Validator обертка над go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с кастомными правилами
func New() *Validator {
	v := validator.New()

	// В ошибках используем имена полей из json тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// ValidateStruct валидирует структуру и возвращает AppError с деталями по полям
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InternalError(err)
	}

	details := make(map[string]string)
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = getErrorMessage(fieldErr)
	}

	return apperrors.ValidationError(details)
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "url":
		return "Invalid URL format"
	case "is-brief-status":
		return "Invalid status: must be one of DRAFT, PUBLISHED, ARCHIVED"
	case "is-reward-type":
		return "Invalid reward type: must be one of CASH, BONUS_BETS, OTHER"
	case "is-submission-status":
		return "Invalid status: must be one of PENDING, APPROVED, REJECTED"
	case "is-application-status":
		return "Invalid status: must be one of approved, rejected, pending"
	default:
		return fmt.Sprintf("Failed validation on rule: %s", fe.Tag())
	}
}
