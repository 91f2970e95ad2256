package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/features/kas/tunggakan/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type TunggakanController struct {
	Svc *service.Service
}

func NewTunggakanController(svc *service.Service) *TunggakanController {
	return &TunggakanController{Svc: svc}
}

// GET /tunggakan?status=terlambat
func (h *TunggakanController) Roster(c *fiber.Ctx) error {
	snap, err := h.Svc.Snapshot(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}

	rows := snap.Roster.Rows
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		filtered := make([]service.StudentArrears, 0, len(rows))
		for _, r := range rows {
			if string(r.Status) == st {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"summary":        snap.Roster.Summary,
		"weekly_amount":  snap.Settings.WeeklyAmount,
		"late_threshold": snap.Settings.LateThreshold,
		"rows":           rows,
	})
}

// GET /tunggakan/:id
func (h *TunggakanController) ForStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	row, err := h.Svc.ForStudent(c.UserContext(), id, dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", row)
}

// GET /tunggakan/candidates?min_weeks=4
func (h *TunggakanController) Candidates(c *fiber.Ctx) error {
	minWeeks := 0
	if raw := strings.TrimSpace(c.Query("min_weeks")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return helper.JsonError(c, fiber.StatusBadRequest, "min_weeks harus bilangan bulat >= 1")
		}
		minWeeks = n
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

// GET /current-week
func (h *TunggakanController) CurrentWeek(c *fiber.Ctx) error {
	snap, err := h.Svc.Snapshot(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"current_week": snap.Roster.Summary.CurrentWeek,
		"start_date":   dbtime.DateKey(snap.Settings.StartDate),
	})
}
