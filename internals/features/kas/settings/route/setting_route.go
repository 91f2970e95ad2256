package route

import (
	"github.com/gofiber/fiber/v2"

	settingCtl "kaskelas_backend/internals/features/kas/settings/controller"
)

func SettingPublicRoutes(r fiber.Router, ctl *settingCtl.SettingController) {
	r.Get("/settings", ctl.Get)
}

func SettingAdminRoutes(r fiber.Router, ctl *settingCtl.SettingController) {
	r.Get("/settings", ctl.Get)
	r.Patch("/settings", ctl.Update)
}
