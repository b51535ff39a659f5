package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewCORS construye el middleware CORS con la lista de orígenes permitidos.
// Solo los orígenes aceptados reciben respuestas cross-origin con credenciales;
// el resto se rechaza en el borde, antes de llegar a cualquier ruta.
func NewCORS(allowedOrigins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return originAllowed(origin, allowedOrigins)
		},
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	})
}

// originAllowed replica las reglas del servicio original: coincidencia exacta,
// prefijo permitido, o sufijo vercel.app cuando la lista incluye un dominio
// vercel.app (los previews de Vercel cambian de subdominio en cada deploy).
func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if origin == a || strings.HasPrefix(origin, a) {
			return true
		}
		if strings.Contains(a, "vercel.app") && strings.Contains(origin, "vercel.app") {
			return true
		}
	}
	return false
}
