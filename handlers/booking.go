package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking-api/database"
	"hotel-booking-api/errors"
	"hotel-booking-api/model"
)

const (
	minNights = 1
	maxNights = 3
)

func GetBookings(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	filter := bson.D{}
	if !caller.IsAdmin() {
		filter = append(filter, bson.E{Key: "user", Value: caller.Id})
	}
	if c.Params("hotelId") != "" {
		hotelId, err := parseObjectIDParam(c, "hotelId")
		if err != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprint(err))
		}
		filter = append(filter, bson.E{Key: "hotel", Value: hotelId})
	}

	bookings, dbErr := database.FindBookings(c.Context(), filter)
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Booking")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(bookings),
		"data":    bookings})
}

func GetBooking(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	bookingId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	booking, dbErr := database.GetBooking(c.Context(), bookingId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No booking with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Booking")
	}

	if !caller.IsAdmin() && booking.User != caller.Id {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": booking})
}

func CreateBooking(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	hotelId, err := parseObjectIDParam(c, "hotelId")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	_, hotelErr := database.GetHotel(c.Context(), hotelId)
	if hotelErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No hotel with the id of %v", c.Params("hotelId")))
	}
	if hotelErr != nil {
		log.Print(hotelErr)
		return errors.RaiseInternalServerError(c, "Cannot create Booking")
	}

	type BookingInput struct {
		BookingDate    time.Time `json:"booking_date"`
		NumberOfNights int       `json:"number_of_nights"`
	}
	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for booking parameters")
	}

	if validationErr := validateBookingDate(input.BookingDate, time.Now()); validationErr != nil {
		return errors.RaiseBadRequestError(c, "The booking date should be after today.")
	}
	if validationErr := validateNumberOfNights(input.NumberOfNights); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("Number of Nights should be within %v", maxNights))
	}

	booking := model.Booking{
		Id:             primitive.NewObjectID(),
		BookingDate:    input.BookingDate,
		NumberOfNights: input.NumberOfNights,
		User:           caller.Id,
		Hotel:          hotelId,
		CreatedAt:      time.Now(),
	}

	writeErr := database.InsertBooking(c.Context(), booking)
	if writeErr != nil {
		log.Print(writeErr)
		return errors.RaiseInternalServerError(c, "Cannot create Booking")
	}

	// best-effort owner lookup, failures are logged and never surfaced
	go func(ownerId primitive.ObjectID) {
		if _, lookupErr := database.GetUser(context.Background(), ownerId); lookupErr != nil {
			log.Printf("owner lookup after booking create failed: %v", lookupErr)
		}
	}(caller.Id)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": booking})
}

func UpdateBooking(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	bookingId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	booking, dbErr := database.GetBooking(c.Context(), bookingId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No booking with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot update Booking")
	}

	if !caller.IsAdmin() && booking.User != caller.Id {
		return errors.RaisePermissionsError(c,
			fmt.Sprintf("User %v is not authorized to update this booking", caller.Id.Hex()))
	}

	update := new(model.BookingUpdate)
	if err := c.BodyParser(update); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for booking parameters")
	}

	set := bson.D{}
	if update.BookingDate != nil {
		if validationErr := validateBookingDate(*update.BookingDate, time.Now()); validationErr != nil {
			return errors.RaiseBadRequestError(c, "Cannot change booking date to be before today.")
		}
		set = append(set, bson.E{Key: "booking_date", Value: *update.BookingDate})
	}
	if update.NumberOfNights != nil {
		if validationErr := validateNumberOfNights(*update.NumberOfNights); validationErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("Number of Nights should be within %v", maxNights))
		}
		set = append(set, bson.E{Key: "number_of_nights", Value: *update.NumberOfNights})
	}
	if len(set) == 0 {
		return errors.RaiseBadRequestError(c, "no booking fields to update")
	}

	updated, updateErr := database.UpdateBooking(c.Context(), bookingId, set)
	if updateErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No booking with the id of %v", c.Params("id")))
	}
	if updateErr != nil {
		log.Print(updateErr)
		return errors.RaiseInternalServerError(c, "Cannot update Booking")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": updated})
}

func DeleteBooking(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	bookingId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	booking, dbErr := database.GetBooking(c.Context(), bookingId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No booking with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot delete Booking")
	}

	if !caller.IsAdmin() && booking.User != caller.Id {
		return errors.RaisePermissionsError(c,
			fmt.Sprintf("User %v is not authorized to delete this booking", caller.Id.Hex()))
	}

	deleteErr := database.DeleteBooking(c.Context(), bookingId)
	if deleteErr != nil && deleteErr != database.ErrNotFound {
		log.Print(deleteErr)
		return errors.RaiseInternalServerError(c, "Cannot delete Booking")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

// validateBookingDate requires the booking date to fall strictly after the
// current date, compared at day granularity. Booking for "today" is rejected.
func validateBookingDate(bookingDate, now time.Time) error {
	y, m, d := now.Date()
	startOfTomorrow := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	if bookingDate.Before(startOfTomorrow) {
		return fmt.Errorf("booking date %v is not after today", bookingDate.Format("2006-01-02"))
	}
	return nil
}

func validateNumberOfNights(nights int) error {
	if nights < minNights || nights > maxNights {
		return fmt.Errorf("number of nights %v is out of range [%v,%v]", nights, minNights, maxNights)
	}
	return nil
}
