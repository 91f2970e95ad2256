package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kaskelas_backend/internals/features/kas/reports/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
)

type ReportController struct {
	Svc *service.Service
}

func NewReportController(svc *service.Service) *ReportController {
	return &ReportController{Svc: svc}
}

// ?window=7|30|90|all (default 30)
func parseWindow(c *fiber.Ctx) (int, error) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("window", "30")))
	if raw == "all" || raw == "0" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || (n != 7 && n != 30 && n != 90) {
		return 0, fiber.NewError(fiber.StatusBadRequest, "window harus 7, 30, 90 atau all")
	}
	return n, nil
}

// GET /reports/dashboard
func (h *ReportController) Dashboard(c *fiber.Ctx) error {
	d, err := h.Svc.Dashboard(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", d)
}

// GET /reports/income-expense?window=
func (h *ReportController) IncomeExpense(c *fiber.Ctx) error {
	window, err := parseWindow(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := h.Svc.IncomeExpense(c.UserContext(), dbtime.NowInClass(), window)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /reports/expense-categories?window=
func (h *ReportController) ExpenseCategories(c *fiber.Ctx) error {
	window, err := parseWindow(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := h.Svc.ExpenseCategories(c.UserContext(), dbtime.NowInClass(), window)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /reports/weekly
func (h *ReportController) Weekly(c *fiber.Ctx) error {
	rows, err := h.Svc.Weekly(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /reports/heatmap
func (h *ReportController) Heatmap(c *fiber.Ctx) error {
	hm, err := h.Svc.Heatmap(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", hm)
}

// GET /reports/debt-trend
func (h *ReportController) DebtTrend(c *fiber.Ctx) error {
	rows, err := h.Svc.DebtTrend(c.UserContext(), dbtime.NowInClass())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}
