package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kaskelas_backend/internals/helpers/dbtime"
)

// ParseUUIDParam baca path param :name sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak boleh kosong")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" bukan UUID yang valid")
	}
	return id, nil
}

// ParseDateQuery baca ?key=YYYY-MM-DD di timezone kelas; kosong → nil.
func ParseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(raw, dbtime.ClassLocation())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" harus berformat YYYY-MM-DD")
	}
	return &t, nil
}
