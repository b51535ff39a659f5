package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/studio-ayni/ayni-api/internal/application/auth"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC *usecase.ProductoUseCase
	PedidoUC   *usecase.PedidoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	AuthUC     *auth.AuthUseCase
	Health     HealthDeps
	JWTSecret  string
}

// Router registra las rutas de la API. La superficie pública es deliberadamente
// chica: catálogo de lectura, creación de pedidos desde la tienda, login y
// salud. Todo lo demás pasa por AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	healthHandler := NewHealthHandler(deps.Health)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API de Studio AYNI",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": fiber.Map{
				"productos": "/api/productos",
				"pedidos":   "/api/pedidos",
				"usuarios":  "/api/usuarios",
				"login":     "/api/login",
				"health":    "/api/health",
			},
		})
	})

	api := app.Group("/api")
	protect := AuthMiddleware(deps.JWTSecret)

	// Auth
	api.Post("/login", authHandler.Login)
	api.Get("/verify", protect, authHandler.Verify)

	// Productos: lectura pública, mutaciones protegidas
	api.Get("/productos", productoHandler.List)
	api.Get("/productos/:id", productoHandler.GetByID)
	api.Post("/productos", protect, productoHandler.Create)
	api.Put("/productos/:id", protect, productoHandler.Update)
	api.Delete("/productos/:id", protect, productoHandler.Delete)

	// Pedidos: creación pública (checkout de la tienda), gestión protegida
	api.Post("/pedidos", pedidoHandler.Create)
	api.Get("/pedidos", protect, pedidoHandler.List)
	api.Patch("/pedidos/:id", protect, pedidoHandler.UpdateEstado)

	// Usuarios (protegido)
	api.Get("/usuarios", protect, usuarioHandler.List)

	// Salud (público)
	api.Get("/health", healthHandler.Health)
}
