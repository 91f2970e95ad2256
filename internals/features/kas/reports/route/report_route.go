package route

import (
	"github.com/gofiber/fiber/v2"

	reportCtl "kaskelas_backend/internals/features/kas/reports/controller"
)

func ReportPublicRoutes(r fiber.Router, ctl *reportCtl.ReportController) {
	g := r.Group("/reports")
	g.Get("/dashboard", ctl.Dashboard)
	g.Get("/income-expense", ctl.IncomeExpense)
	g.Get("/expense-categories", ctl.ExpenseCategories)
	g.Get("/weekly", ctl.Weekly)
	g.Get("/heatmap", ctl.Heatmap)
	g.Get("/debt-trend", ctl.DebtTrend)
}

func ExportAdminRoutes(r fiber.Router, ctl *reportCtl.ExportController) {
	r.Get("/export/kas.xlsx", ctl.Workbook)
}
