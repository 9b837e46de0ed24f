package main

import (
	"log"
	"net/http"

	"github.com/graph-gophers/graphql-go/relay"

	"mercato-be/internal/auth"
	"mercato-be/internal/cache"
	"mercato-be/internal/catalog"
	"mercato-be/internal/config"
	"mercato-be/internal/customer"
	"mercato-be/internal/db"
	"mercato-be/internal/graph"
	"mercato-be/internal/logger"
	"mercato-be/internal/middleware"
	"mercato-be/internal/supplier"
	"mercato-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := cache.New(cfg, logger.L())
	defer redisClient.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	guard := auth.NewRoleGuard(tokens)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	supplierRepo := supplier.NewRepository(database)
	supplierSvc := supplier.NewService(supplierRepo)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo, redisClient)

	resolver := &graph.Resolver{
		UserSvc:     userSvc,
		CustomerSvc: customerSvc,
		SupplierSvc: supplierSvc,
		CatalogSvc:  catalogSvc,
		Guard:       guard,
	}

	schema := graph.NewSchema(resolver)

	mux := http.NewServeMux()
	mux.Handle("/", graph.GraphiQLHandler())
	mux.Handle("/query", &relay.Handler{Schema: schema})

	handler := logger.RequestIDMiddleware(
		middleware.RateLimitMiddleware(
			middleware.BearerTokenMiddleware(
				middleware.LoggingMiddleware(mux),
			),
		),
	)

	log.Printf("GraphQL server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
