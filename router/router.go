package router

import (
	"hotel-booking-api/handlers"
	"hotel-booking-api/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/",
		logger.New(),
		requestid.New(requestid.Config{Generator: uuid.NewString}))

	//Login
	login := api.Group("/login")
	login.Post("/", handlers.Login)

	//Hotel
	hotel := api.Group("/hotels")
	hotel.Get("/", handlers.GetHotels)
	hotel.Get("/:id", handlers.GetHotel)
	hotel.Post("/", middleware.Authorize(), handlers.CreateHotel)
	hotel.Put("/:id", middleware.Authorize(), handlers.UpdateHotel)
	hotel.Delete("/:id", middleware.Authorize(), handlers.DeleteHotel)

	//Booking nested under hotel
	hotel.Get("/:hotelId/bookings", middleware.Authorize(), handlers.GetBookings)
	hotel.Post("/:hotelId/bookings", middleware.Authorize(), handlers.CreateBooking)

	//Booking
	booking := api.Group("/bookings", middleware.Authorize())
	booking.Get("/", handlers.GetBookings)
	booking.Get("/:id", handlers.GetBooking)
	booking.Put("/:id", handlers.UpdateBooking)
	booking.Delete("/:id", handlers.DeleteBooking)

	//Transfer
	transfer := api.Group("/transfers", middleware.Authorize())
	transfer.Get("/", handlers.GetTransfers)
	transfer.Post("/", handlers.CreateTransfer)
	transfer.Put("/approve/:id", handlers.ApproveTransfer)
	transfer.Get("/:id", handlers.GetTransfer)
	transfer.Put("/:id", handlers.UpdateTransfer)
	transfer.Delete("/:id", handlers.DeleteTransfer)
}
