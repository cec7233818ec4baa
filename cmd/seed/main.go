// seed crea las tablas del catálogo, un catálogo de demostración y el operador administrador.
//
// Uso: go run ./cmd/seed --admin-email admin@tienda.co --admin-password secreto123 [--demo=false]
// Las mismas opciones se leen de SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD y SEED_DEMO.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/speed-edit-api/internal/application/auth"
	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/infrastructure/postgres"
	"github.com/jhoicas/speed-edit-api/pkg/config"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

type demoProduct struct {
	product    entity.Product
	variations []entity.Product
}

var demoCatalog = []demoProduct{
	{product: entity.Product{Type: entity.ProductTypeSimple, SKU: "TAZA-01", Name: "Taza de cerámica",
		Price: decimal.RequireFromString("12000"), StockQuantity: 24, Location: "A-01"}},
	{product: entity.Product{Type: entity.ProductTypeSimple, SKU: "CUAD-01", Name: "Cuaderno argollado",
		Price: decimal.RequireFromString("8500"), StockQuantity: 40, Location: "B-03"}},
	{
		product: entity.Product{Type: entity.ProductTypeVariable, SKU: "CAM-01", Name: "Camisa básica",
			Price: decimal.RequireFromString("49900")},
		variations: []entity.Product{
			{SKU: "CAM-01-S", Name: "Camisa básica - S", StockQuantity: 5, Location: "C-01"},
			{SKU: "CAM-01-M", Name: "Camisa básica - M", StockQuantity: 8, Location: "C-01"},
			{SKU: "CAM-01-L", Name: "Camisa básica - L", StockQuantity: 0, Location: "C-02"},
		},
	},
}

func main() {
	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	flags.String("admin-email", "admin@speed-edit.local", "email del operador administrador")
	flags.String("admin-password", "", "password del administrador (mín. 8 caracteres)")
	flags.Bool("demo", true, "crear el catálogo de demostración si la tabla products está vacía")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	v.SetEnvPrefix("SEED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureCatalogSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear tablas de catálogo")
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear tabla speed_edit_log")
	}

	if v.GetBool("demo") {
		var count int
		if err := pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
			log.Fatal().Err(err).Msg("contar productos")
		}
		if count == 0 {
			created, err := seedCatalog(ctx, postgres.NewCatalogRepository(pool))
			if err != nil {
				log.Fatal().Err(err).Msg("crear catálogo de demostración")
			}
			log.Info().Int("productos", created).Msg("catálogo de demostración creado")
		} else {
			log.Info().Int("productos", count).Msg("catálogo existente, no se crea demo")
		}
	}

	password := v.GetString("admin-password")
	if password == "" {
		log.Warn().Msg("sin --admin-password: no se crea administrador")
		return
	}
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	admin, err := authUC.RegisterUser(ctx, dto.RegisterRequest{
		Email:    v.GetString("admin-email"),
		Password: password,
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", v.GetString("admin-email")).Msg("administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("crear administrador")
	default:
		log.Info().Int64("user_id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
	}
}

// seedCatalog inserta los productos de demostración; las variaciones heredan el precio del padre.
func seedCatalog(ctx context.Context, repo *postgres.CatalogRepo) (int, error) {
	created := 0
	for _, d := range demoCatalog {
		parent := d.product
		if err := repo.Create(ctx, &parent, 0); err != nil {
			return created, err
		}
		created++
		for i, variation := range d.variations {
			variation.ParentID = parent.ID
			variation.Type = entity.ProductTypeVariation
			variation.Price = parent.Price
			if err := repo.Create(ctx, &variation, i+1); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
