package route

import (
	"github.com/gofiber/fiber/v2"

	expenseCtl "kaskelas_backend/internals/features/kas/expenses/controller"
)

func ExpensePublicRoutes(r fiber.Router, ctl *expenseCtl.ExpenseController) {
	r.Get("/expenses", ctl.List)
}

func ExpenseAdminRoutes(r fiber.Router, ctl *expenseCtl.ExpenseController) {
	g := r.Group("/expenses")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
