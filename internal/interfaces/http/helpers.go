package http

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

var validate = validator.New()

func init() {
	// decimal.Decimal se valida como número (gt=0, min=...).
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// Los mensajes usan el nombre JSON del campo.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate parsea el JSON y aplica las etiquetas validate.
// Devuelve domain.ErrInvalidInput con el primer campo que falla.
func bindAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo JSON inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fieldMessage(fe))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es requerido", fe.Field())
	case "email":
		return fmt.Sprintf("el campo %s debe ser un correo válido", fe.Field())
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor que %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s excede %s caracteres", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s requiere al menos %s caracteres", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("el campo %s no es válido (%s)", fe.Field(), fe.Tag())
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, name)
	}
	return id, nil
}
