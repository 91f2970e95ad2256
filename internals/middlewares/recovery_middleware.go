package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"kaskelas_backend/internals/configs"
	"kaskelas_backend/internals/middlewares/logger"
)

// RecoveryMiddleware menangkap panic; log memuat reqid supaya bisa dicocokkan
// dengan access log. Response 500 dirender ErrorHandler aplikasi.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: configs.GetEnvBool("PANIC_STACKTRACE", true),
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] reqid=%v %s %s: %v\n%s", c.Locals(logger.LocRequestID), c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
