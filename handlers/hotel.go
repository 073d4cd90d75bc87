package handlers

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking-api/database"
	"hotel-booking-api/errors"
	"hotel-booking-api/model"
)

var telPattern = regexp.MustCompile(`^\s*(?:\+?(\d{1,3}))?[-. (]*(\d{3})[-. )]*(\d{3})[-. ]*(\d{4})(?: *x(\d+))?\s*$`)

func GetHotels(c *fiber.Ctx) error {
	hotels, dbErr := database.GetHotels(c.Context())
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Hotels")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(hotels),
		"data":    hotels})
}

func GetHotel(c *fiber.Ctx) error {
	hotelId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	hotel, dbErr := database.GetHotel(c.Context(), hotelId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No hotel with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Hotel")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": hotel})
}

func CreateHotel(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}
	if !caller.IsAdmin() {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	newHotel := new(model.Hotel)
	if err := c.BodyParser(newHotel); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for hotel parameters")
	}
	newHotel.Id = primitive.NewObjectID()
	newHotel.Name = strings.TrimSpace(newHotel.Name)

	if validationErr := validateHotelInput(*newHotel); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(validationErr))
	}

	writeErr := database.InsertHotel(c.Context(), *newHotel)
	if writeErr == database.ErrDuplicate {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("hotel with name %v already exists", newHotel.Name))
	}
	if writeErr != nil {
		log.Print(writeErr)
		return errors.RaiseInternalServerError(c, "Cannot create Hotel")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": newHotel})
}

func UpdateHotel(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}
	if !caller.IsAdmin() {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	hotelId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	type HotelUpdate struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Tel     *string `json:"tel"`
	}
	update := new(HotelUpdate)
	if err := c.BodyParser(update); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for hotel parameters")
	}

	set := bson.D{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if validationErr := isValidHotelName(name); validationErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprint(validationErr))
		}
		set = append(set, bson.E{Key: "name", Value: name})
	}
	if update.Address != nil {
		if *update.Address == "" {
			return errors.RaiseBadRequestError(c, "hotel address cannot be empty")
		}
		set = append(set, bson.E{Key: "address", Value: *update.Address})
	}
	if update.Tel != nil {
		if !telPattern.MatchString(*update.Tel) {
			return errors.RaiseBadRequestError(c, "incorrect telephone number format")
		}
		set = append(set, bson.E{Key: "tel", Value: *update.Tel})
	}
	if len(set) == 0 {
		return errors.RaiseBadRequestError(c, "no hotel fields to update")
	}

	hotel, dbErr := database.UpdateHotel(c.Context(), hotelId, set)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No hotel with the id of %v", c.Params("id")))
	}
	if dbErr == database.ErrDuplicate {
		return errors.RaiseBadRequestError(c, "hotel with this name already exists")
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot update Hotel")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": hotel})
}

func DeleteHotel(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}
	if !caller.IsAdmin() {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	hotelId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	dbErr := database.DeleteHotel(c.Context(), hotelId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No hotel with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot delete Hotel")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func validateHotelInput(hotel model.Hotel) error {
	if err := isValidHotelName(hotel.Name); err != nil {
		return err
	}
	if hotel.Address == "" {
		return fmt.Errorf("hotel address cannot be empty")
	}
	if !telPattern.MatchString(hotel.Tel) {
		return fmt.Errorf("incorrect telephone number format")
	}
	return nil
}

func isValidHotelName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("hotel name is too short")
	}
	if len(name) > 50 {
		return fmt.Errorf("hotel name cannot be more than 50 characters")
	}
	return nil
}
