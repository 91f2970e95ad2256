package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/features/kas/reminders/model"
	"kaskelas_backend/internals/features/kas/reminders/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type ReminderController struct {
	Svc *service.Service
}

func NewReminderController(svc *service.Service) *ReminderController {
	return &ReminderController{Svc: svc}
}

type sendReminderRequest struct {
	MinWeeks int `json:"min_weeks"`
}

func minWeeksQuery(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("min_weeks"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "min_weeks harus bilangan bulat >= 1")
	}
	return n, nil
}

// GET /reminders/candidates?min_weeks=
func (h *ReminderController) Candidates(c *fiber.Ctx) error {
	minWeeks, err := minWeeksQuery(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, snap, err := h.Svc.Candidates(c.UserContext(), dbtime.NowInClass(), minWeeks)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"current_week": snap.Roster.Summary.CurrentWeek,
		"candidates":   rows,
	})
}

// POST /reminders/send  body: {"min_weeks": 4} (opsional)
func (h *ReminderController) Send(c *fiber.Ctx) error {
	var req sendReminderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if req.MinWeeks < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "min_weeks tidak boleh negatif")
	}

	entry, results, err := h.Svc.SendReminders(c.UserContext(), dbtime.NowInClass(), req.MinWeeks, model.TriggerManual)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Pengingat diproses", fiber.Map{
		"log":     entry,
		"results": results,
	})
}

// GET /reminders/logs?limit=
func (h *ReminderController) Logs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	rows, err := h.Svc.Logs(c.UserContext(), limit)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}
