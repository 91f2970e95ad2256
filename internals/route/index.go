// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kaskelas_backend/internals/configs"
	"kaskelas_backend/internals/middlewares/auth"
	routeDetails "kaskelas_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) *routeDetails.KasModule {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Wiring service kas...")
	kas := routeDetails.NewKasModule(db, rdb)

	// PUBLIC → tanpa login, read-only
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → bendahara / admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		auth.TreasurerOnly(),
	)

	log.Println("[INFO] Mounting Kas routes...")
	routeDetails.KasPublicRoutes(public, kas)
	routeDetails.KasAdminRoutes(admin, kas)

	return kas
}
