package route

import (
	"github.com/gofiber/fiber/v2"

	studentCtl "kaskelas_backend/internals/features/kas/students/controller"
)

func StudentPublicRoutes(r fiber.Router, ctl *studentCtl.StudentController) {
	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func StudentAdminRoutes(r fiber.Router, ctl *studentCtl.StudentController) {
	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
