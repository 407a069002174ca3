// Package validation aplica as tags `validate` dos payloads e converte as
// violações em apperror.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperror "gocatalog/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Reporta o nome JSON do campo, que é o que o cliente enviou.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct valida s e devolve nil ou um *apperror.ValidationError.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperror.NewValidationError(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo '%s' é obrigatório", fe.Field())
	case "gte":
		return fmt.Sprintf("o campo '%s' deve ser maior ou igual a %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("o campo '%s' deve ser maior ou igual a '%s'", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("o campo '%s' falhou na regra '%s'", fe.Field(), fe.Tag())
	}
}
