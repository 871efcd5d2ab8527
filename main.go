package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Sujal2120/DailyFlow/config"
	"github.com/Sujal2120/DailyFlow/router"

	_ "time/tzdata"
)

func main() {
	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		AppName: "Dayflow API",
	})

	app.Use(logger.New())
	config.SetupCORS(app)

	router.SetupRoutes(app, cfg)

	log.Printf("Dayflow API listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
