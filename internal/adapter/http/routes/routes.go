package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "house_calculator/docs"
	"house_calculator/internal/adapter/http/handlers"
	"house_calculator/internal/adapter/http/middleware"
	"house_calculator/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI         = "/api"
	shutdownTimeout = 10 * time.Second
)

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(a.Log),
		middleware.RequestLogger(a.Log),
		middleware.Metrics(),
		middleware.CORS(a.Config.CORSAllowedOrigins),
		middleware.Identity(),
	)

	addRootRoutes(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	api.Use(middleware.RateLimit(a.Config.RateLimitRPS, a.Config.RateLimitBurst))
	addPingRoutes(api)
	addCalculationRoutes(api, handlers.NewCalculationHandler(a.Calculations))
	addMaterialRoutes(api, handlers.NewMaterialHandler(a.Materials))

	return router
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, a *app.App) error {
	a.SeedCatalog(ctx)

	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("[http] listening", zap.String("addr", srv.Addr))
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

	a.Log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
