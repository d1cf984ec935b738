package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "creditflow360/internal/adapter/http"
	"creditflow360/internal/adapter/middleware"
	"creditflow360/internal/adapter/repository/warehouse"
	"creditflow360/internal/config"
	"creditflow360/internal/export"
	"creditflow360/internal/infrastructure/cache"
	"creditflow360/internal/infrastructure/db"
	"creditflow360/internal/usecase/run"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// MySQL is optional: without it runs still generate and export, they
	// just cannot load the warehouse.
	var wh run.Warehouse
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Printf("mysql unavailable, warehouse loading disabled: %v", err)
	} else {
		wh = warehouse.NewLoader(gdb)
	}

	uc := run.NewUsecase(wh, export.NewWriter(cfg.ExportDir))
	h := httpadp.NewHandler()
	rh := httpadp.NewRunHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	// Redis is optional too: without it POST /v1/runs is simply not
	// idempotent across retries.
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, idempotency disabled: %v", err)
	} else {
		ttl := time.Duration(cfg.IdempTTLSecs) * time.Second
		e.Use(middleware.IdempotencyMiddleware(rdb, ttl))
	}

	// routes
	e.GET("/health", h.Health)
	e.POST("/v1/runs", rh.StartRun)
	e.GET("/v1/runs", rh.ListRuns)
	e.GET("/v1/runs/:run_id", rh.GetRun)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
