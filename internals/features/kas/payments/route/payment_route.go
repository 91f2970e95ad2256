package route

import (
	"github.com/gofiber/fiber/v2"

	paymentCtl "kaskelas_backend/internals/features/kas/payments/controller"
)

func PaymentPublicRoutes(r fiber.Router, ctl *paymentCtl.PaymentController) {
	r.Get("/payments", ctl.List)
}

func PaymentAdminRoutes(r fiber.Router, ctl *paymentCtl.PaymentController) {
	g := r.Group("/payments")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Post("/bulk", ctl.BulkCreate)
	g.Delete("/:id", ctl.Delete) // koreksi = hapus + catat ulang
}
