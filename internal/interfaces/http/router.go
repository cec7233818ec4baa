package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/speed-edit-api/internal/application/auth"
	"github.com/jhoicas/speed-edit-api/internal/application/speededit"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	SpeedEditUC  *speededit.UseCase
	JWTSecret    string
	MaxBatchSize int
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth: login público; alta de operadores solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", requireAuth, RequireRole(entity.RoleAdmin), authHandler.Register)

	// Editor rápido (protegido: admin o bodeguero)
	speed := api.Group("/speed-edit", requireAuth, RequireRole(entity.StockManagerRoles...))
	speedHandler := NewSpeedEditHandler(deps.SpeedEditUC, deps.MaxBatchSize, deps.Log)
	speed.Post("/stock", speedHandler.UpdateStock)
	speed.Get("/log", speedHandler.ListLog)
	speed.Get("/products/:id", speedHandler.GetProduct)
	speed.Post("/products/:id/form", speedHandler.SaveProductForm)
	speed.Get("/products/:id/log.pdf", speedHandler.ExportLogPDF)
}
