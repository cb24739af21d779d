package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cctv_estimator/config"
	_ "cctv_estimator/docs"
	"cctv_estimator/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires the application and serves HTTP until SIGINT or SIGTERM.
func Run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(cfg, log, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[routes] http server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the gin engine with middlewares, swagger and every
// versioned route group.
func newRouter(cfg *config.Config, log logger.Logger, deps *dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, deps.estimatorHandler, deps.pricingHandler, deps.inquiryHandler)
	addAdminRoutes(v1, deps.sessions, deps.adminHandler, deps.pricingHandler, deps.inquiryHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[routes] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	c.ExposeHeaders = []string{"Content-Disposition"}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	// The admin session cookie needs credentialed requests.
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
