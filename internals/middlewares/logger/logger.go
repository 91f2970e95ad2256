package logger

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kaskelas_backend/internals/configs"
	"kaskelas_backend/internals/middlewares/auth"
)

// LocRequestID: key Locals untuk X-Request-ID (diisi di main.go).
const LocRequestID = "reqid"

// LoggerMiddleware mencatat semua request; reqid sama dengan baris [REQ].
func LoggerMiddleware() fiber.Handler {
	return newLogger(os.Stdout)
}

func newLogger(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("CLASS_TIMEZONE", "Asia/Jakarta"),
		Format:     "[${time}] reqid=${locals:" + LocRequestID + "} user=${locals:" + auth.LocUserID + "} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
		Output:     out,
	})
}
