package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/supply-chain-api/internal/application/dto"
)

// validate instancia única de validator con los nombres de campo tomados del
// tag json, para que los errores hablen el mismo idioma que el cliente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldError error de validación de un campo concreto.
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// parseAndValidate deserializa el body y lo valida. Devuelve una respuesta 400
// ya escrita cuando algo falla; el handler solo tiene que retornar.
func parseAndValidate(c *fiber.Ctx, out interface{}) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	return validateStruct(c, out)
}

// parseQueryAndValidate igual que parseAndValidate pero para query params.
func parseQueryAndValidate(c *fiber.Ctx, out interface{}) (ok bool, err error) {
	if err := c.QueryParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_QUERY", "parámetros inválidos", err.Error()))
	}
	return validateStruct(c, out)
}

func validateStruct(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := validate.Struct(out); err != nil {
		var details []fieldError
		if verrs, isValidation := err.(validator.ValidationErrors); isValidation {
			for _, ve := range verrs {
				details = append(details, fieldError{Field: ve.Field(), Rule: ve.Tag(), Param: ve.Param()})
			}
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", details))
	}
	return true, nil
}
