package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/studio-ayni/ayni-api/internal/application/auth"
	"github.com/studio-ayni/ayni-api/internal/application/ports"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
	"github.com/studio-ayni/ayni-api/internal/infrastructure/jsonstore"
	"github.com/studio-ayni/ayni-api/internal/infrastructure/media"
	"github.com/studio-ayni/ayni-api/internal/infrastructure/postgres"
	httpRouter "github.com/studio-ayni/ayni-api/internal/interfaces/http"
	"github.com/studio-ayni/ayni-api/pkg/config"
	"github.com/studio-ayni/ayni-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("media_driver", cfg.Media.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: mismo juego de puertos, backend elegido una vez al arrancar.
	var (
		productoRepo repository.ProductoRepository
		pedidoRepo   repository.PedidoRepository
		usuarioRepo  repository.UsuarioRepository
		pingDB       func(ctx context.Context) error
	)
	switch cfg.DB.Driver {
	case config.DBDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		productoRepo = postgres.NewProductoRepository(pool)
		pedidoRepo = postgres.NewPedidoRepository(pool)
		usuarioRepo = postgres.NewUsuarioRepository(pool)
		pingDB = pool.Ping
	case config.DBDriverJSONFile:
		if err := jsonstore.EnsureDir(cfg.DB.DataDir); err != nil {
			log.Fatal().Err(err).Msg("directorio de datos")
		}
		productoRepo = jsonstore.NewProductoRepository(cfg.DB.DataDir)
		pedidoRepo = jsonstore.NewPedidoRepository(cfg.DB.DataDir)
		usuarioRepo = jsonstore.NewUsuarioRepository(cfg.DB.DataDir)
		pingDB = func(context.Context) error { return jsonstore.CheckDir(cfg.DB.DataDir) }
	}

	// Almacenamiento de imágenes
	var mediaStorage ports.MediaStorage
	var localDir string
	switch cfg.Media.Driver {
	case config.MediaDriverCloudinary:
		cld, err := media.NewCloudinaryStorage(cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar Cloudinary")
		}
		mediaStorage = cld
	case config.MediaDriverLocal:
		local, err := media.NewLocalStorage(cfg.Media.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de uploads")
		}
		mediaStorage = local
		localDir = local.Dir()
	}

	productoUC := usecase.NewProductoUseCase(productoRepo, mediaStorage, log)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, cfg.Pedidos.MetodoPagoDefault, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})

	admin, created, err := authUC.EnsureAdmin(auth.AdminSeed{
		Email:    cfg.Admin.Email,
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar administrador")
	}
	if created {
		log.Info().Str("email", admin.Email).Msg("administrador creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    10 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.NewCORS(cfg.CORS.AllowedOrigins))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Studio AYNI API",
	}))

	if localDir != "" {
		app.Static(media.URLPrefix, localDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC: productoUC,
		PedidoUC:   pedidoUC,
		UsuarioUC:  usuarioUC,
		AuthUC:     authUC,
		Health: httpRouter.HealthDeps{
			ServiceName: cfg.App.Name,
			PingDB:      pingDB,
			MediaDriver: mediaStorage.Driver(),
		},
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
