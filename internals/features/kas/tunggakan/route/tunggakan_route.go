package route

import (
	"github.com/gofiber/fiber/v2"

	tunggakanCtl "kaskelas_backend/internals/features/kas/tunggakan/controller"
)

func TunggakanPublicRoutes(r fiber.Router, ctl *tunggakanCtl.TunggakanController) {
	r.Get("/current-week", ctl.CurrentWeek)
	r.Get("/tunggakan", ctl.Roster)
}

func TunggakanAdminRoutes(r fiber.Router, ctl *tunggakanCtl.TunggakanController) {
	g := r.Group("/tunggakan")
	g.Get("/", ctl.Roster)
	g.Get("/candidates", ctl.Candidates)
	g.Get("/:id", ctl.ForStudent)
}
