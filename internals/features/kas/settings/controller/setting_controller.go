package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/features/kas/settings/dto"
	"kaskelas_backend/internals/features/kas/settings/service"
	helper "kaskelas_backend/internals/helpers"
)

type SettingController struct {
	Svc      *service.Service
	Validate *validator.Validate
}

func NewSettingController(svc *service.Service) *SettingController {
	return &SettingController{Svc: svc, Validate: validator.New()}
}

// GET /settings
func (h *SettingController) Get(c *fiber.Ctx) error {
	st, err := h.Svc.Get(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromSettings(st))
}

// PATCH /settings
func (h *SettingController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FromError(c, err)
	}
	st, err := h.Svc.Update(c.UserContext(), req.ToPatch())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengaturan kas diperbarui", dto.FromSettings(st))
}
