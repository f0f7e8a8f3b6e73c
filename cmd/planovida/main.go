package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/planovida/planovida/app/repository"
	"github.com/planovida/planovida/internal/pkg/cache"
	"github.com/planovida/planovida/internal/pkg/constants"
	"github.com/planovida/planovida/internal/pkg/database"
	"github.com/planovida/planovida/internal/pkg/env"
	"github.com/planovida/planovida/internal/pkg/jobqueue"
	"github.com/planovida/planovida/internal/pkg/router"
)

func main() {
	app := NewApplication()

	manager := jobqueue.StartManager()
	defer manager.Stop()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		AppName: "PlanoVida",
	})

	app.Use(recover.New(), logger.New())
	if env.IsDev() {
		app.Get(constants.MetricsRoute, monitor.New())
	}

	// ROUTER
	router.InstallRouter(app)

	return app
}
