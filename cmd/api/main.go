package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gtkpad369/LegalSch/internal/cache"
	"github.com/gtkpad369/LegalSch/internal/config"
	dbpkg "github.com/gtkpad369/LegalSch/internal/db"
	"github.com/gtkpad369/LegalSch/internal/infra/docstore"
	"github.com/gtkpad369/LegalSch/internal/logger"
	"github.com/gtkpad369/LegalSch/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cleanup := docstore.NewCleanupService(db, docstore.NewS3Store(cfg))
	cleanup.Start(context.Background(), 24*time.Hour)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
