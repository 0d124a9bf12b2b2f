package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tekrabyte/waui-sub001/configs"
	"github.com/tekrabyte/waui-sub001/middlewares"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
	"github.com/tekrabyte/waui-sub001/repository"
	"github.com/tekrabyte/waui-sub001/routes"
	"github.com/tekrabyte/waui-sub001/services"
	"github.com/tekrabyte/waui-sub001/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db); err != nil {
			log.Fatalf("seed demo failed: %v", err)
		}
	}

	store, closeCache, err := configs.OpenCache(cfg, db)
	if err != nil {
		log.Fatalf("open cache failed: %v", err)
	}
	defer closeCache()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewTableHub()
	go hub.Run(ctx)

	sessions := services.NewSessionManager(services.Backends{
		Catalog:        repository.NewCatalogRepository(db),
		Transactions:   repository.NewTransactionRepository(db),
		PaymentMethods: repository.NewPaymentMethodRepository(db),
		Tables:         repository.NewTableRepository(db),
		Cache:          store,
		Notifier:       hub,
	}, logger.NewLogger("pos-terminal"))
	sessions.TTL = cfg.SessionTTL
	go sessions.Run(ctx, time.Minute)

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// ✅ Register API routes
	routes.RegisterRoutes(r, cfg, sessions, hub)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
