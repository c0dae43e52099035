// file: internals/middlewares/cors_middleware.go
package middlewares

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the presentation layer's origins. Override with a
// comma-separated CORS_ORIGINS env value in deployments.
func CorsMiddleware() fiber.Handler {
	origins := os.Getenv("CORS_ORIGINS")
	if strings.TrimSpace(origins) == "" {
		origins = strings.Join([]string{
			"http://localhost:5173",
			"http://127.0.0.1:5500",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
