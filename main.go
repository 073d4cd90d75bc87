package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"hotel-booking-api/config"
	"hotel-booking-api/database"
	"hotel-booking-api/router"
)

func main() {
	if err := database.DBInit(context.Background()); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(config.GetListenAddr()))
}
