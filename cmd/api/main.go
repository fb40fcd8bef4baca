package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "house_calculator/docs"
	"house_calculator/internal/adapter/http/routes"
	"house_calculator/internal/app"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           House Calculator API
// @version         1.0
// @description     Construction material estimation for brick, concrete, wooden and block houses.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller id forwarded by the gateway.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer a.Close()

	if err := routes.Run(ctx, a); err != nil {
		a.Log.Error("[http] server failed", zap.Error(err))
	}
}
