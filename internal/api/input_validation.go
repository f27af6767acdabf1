package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/luna/internal/calendar"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// bindPayload decodes the JSON body into payload and runs struct
// validation. The returned message is safe to show to API clients.
func (handler *Handler) bindPayload(c *fiber.Ctx, payload any) (string, bool) {
	if err := c.BodyParser(payload); err != nil {
		return "invalid payload", false
	}
	if err := handler.validate.Struct(payload); err != nil {
		return validationMessage(err), false
	}
	return "", true
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid payload"
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", first.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", first.Field())
	case "min", "max":
		return fmt.Sprintf("%s is out of range", first.Field())
	default:
		return fmt.Sprintf("%s is invalid", first.Field())
	}
}

// parsePayloadDate converts a validated body field into a calendar date,
// returning the client-facing message when it is not a real day.
func parsePayloadDate(field string, raw string) (calendar.Date, string, bool) {
	day, err := calendar.Parse(raw)
	if err != nil || day.IsZero() {
		return calendar.Date{}, fmt.Sprintf("%s must be a YYYY-MM-DD date", field), false
	}
	return day, "", true
}
