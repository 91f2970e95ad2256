package route

import (
	"github.com/gofiber/fiber/v2"

	eventCtl "kaskelas_backend/internals/features/kas/events/controller"
)

func EventPublicRoutes(r fiber.Router, ctl *eventCtl.EventController) {
	g := r.Group("/events")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func EventAdminRoutes(r fiber.Router, ctl *eventCtl.EventController) {
	g := r.Group("/events")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/payments", ctl.ListPayments)
	g.Post("/:id/payments", ctl.RecordPayment)
	g.Post("/:id/complete", ctl.Complete)
	g.Delete("/:id", ctl.Delete)
}
