package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/helpers/apperr"
)

// FromError mengubah error dari service/validator menjadi response JSON konsisten.
//   - *fiber.Error           → code & message apa adanya
//   - validator.ValidationErrors → 400 + map field→tag
//   - *apperr.Error          → 400/404/409 sesuai Kind
//   - lainnya                → 500
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, f := range ve {
			fields[f.Field()] = f.Tag()
		}
		return JsonValidationError(c, "Validasi gagal", fields)
	}

	if ae, ok := apperr.As(err); ok {
		switch ae.Kind {
		case apperr.KindValidation:
			if ae.Field != "" {
				return JsonValidationError(c, ae.Message, map[string]string{ae.Field: ae.Message})
			}
			return JsonError(c, fiber.StatusBadRequest, ae.Message)
		case apperr.KindNotFound:
			return JsonError(c, fiber.StatusNotFound, ae.Message)
		case apperr.KindInvalidState, apperr.KindConflict:
			return JsonError(c, fiber.StatusConflict, ae.Message)
		}
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
