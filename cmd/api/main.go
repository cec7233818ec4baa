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
	"github.com/swaggo/swag"

	"github.com/jhoicas/speed-edit-api/docs"
	"github.com/jhoicas/speed-edit-api/internal/application/auditlog"
	"github.com/jhoicas/speed-edit-api/internal/application/auth"
	"github.com/jhoicas/speed-edit-api/internal/application/speededit"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
	infracache "github.com/jhoicas/speed-edit-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/speed-edit-api/internal/infrastructure/pdf"
	"github.com/jhoicas/speed-edit-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/speed-edit-api/internal/interfaces/http"
	"github.com/jhoicas/speed-edit-api/pkg/config"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear tabla speed_edit_log")
	}

	// Catálogo: Postgres, con caché Redis read-through si REDIS_ADDR está definido.
	var catalog repository.CatalogRepository = postgres.NewCatalogRepository(pool)
	if cfg.Redis.Enabled() {
		redisClient, err := infracache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		catalog = infracache.NewCachedCatalog(
			catalog,
			infracache.NewRedisProductCache(redisClient, cfg.Redis.TTL()),
			log,
		)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL()).Msg("caché de productos habilitada")
	}

	editLogRepo := postgres.NewEditLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	auditSvc := auditlog.NewService(editLogRepo, nil)
	engine := speededit.NewEngine(catalog, auditSvc, log)
	speedEditUC := speededit.NewUseCase(
		engine, catalog, auditSvc,
		infrapdf.NewEditLogReportGenerator(nil),
		cfg.SpeedEdit.LogLimit,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SpeedEditUC:  speedEditUC,
		JWTSecret:    cfg.JWT.Secret,
		MaxBatchSize: cfg.SpeedEdit.MaxBatchSize,
		Log:          log,
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
