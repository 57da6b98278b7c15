package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahelnejat/Luna/internal/cache"
	"github.com/sahelnejat/Luna/internal/config"
	dbpkg "github.com/sahelnejat/Luna/internal/db"
	"github.com/sahelnejat/Luna/internal/handlers"
	"github.com/sahelnejat/Luna/internal/logger"
	"github.com/sahelnejat/Luna/internal/middleware"
	"github.com/sahelnejat/Luna/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Get().Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedisClient(cfg)

	if err := handlers.EnsureAdmin(db, cfg); err != nil {
		logger.Get().Fatal("failed to seed admin account", zap.Error(err))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.Get().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
