package route

import (
	"github.com/gofiber/fiber/v2"

	reminderCtl "kaskelas_backend/internals/features/kas/reminders/controller"
)

func ReminderAdminRoutes(r fiber.Router, ctl *reminderCtl.ReminderController) {
	g := r.Group("/reminders")
	g.Get("/candidates", ctl.Candidates)
	g.Post("/send", ctl.Send)
	g.Get("/logs", ctl.Logs)
}
