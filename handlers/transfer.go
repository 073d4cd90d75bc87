package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking-api/database"
	"hotel-booking-api/errors"
	"hotel-booking-api/model"
)

const approvalGranted = "Approved"

func GetTransfers(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	filter := bson.D{}
	if !caller.IsAdmin() {
		filter = append(filter, bson.E{Key: "sender", Value: caller.Id})
	}

	transfers, dbErr := database.FindTransfers(c.Context(), filter)
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Transfers")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(transfers),
		"data":    transfers})
}

func GetTransfer(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	transferId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	transfer, dbErr := database.GetTransfer(c.Context(), transferId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot find Transfer")
	}

	if !caller.IsAdmin() && transfer.Sender != caller.Id && transfer.Receiver != caller.Id {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": transfer})
}

func CreateTransfer(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	type TransferInput struct {
		Receiver  string `json:"receiver"`
		BookingId string `json:"booking_id"`
	}
	input := new(TransferInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for transfer parameters")
	}

	receiver, err := primitive.ObjectIDFromHex(input.Receiver)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("%v is not a valid receiver id", input.Receiver))
	}
	bookingId, err := primitive.ObjectIDFromHex(input.BookingId)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("%v is not a valid booking id", input.BookingId))
	}

	booking, dbErr := database.GetBooking(c.Context(), bookingId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No booking with the id of %v", input.BookingId))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot create Transfer")
	}

	// only the current owner may hand a booking off
	if booking.User != caller.Id {
		return errors.RaisePermissionsError(c,
			fmt.Sprintf("User %v is not authorized to transfer this booking", caller.Id.Hex()))
	}

	transfer := model.Transfer{
		Id:               primitive.NewObjectID(),
		Sender:           caller.Id,
		Receiver:         receiver,
		BookingId:        bookingId,
		ReceiverApproval: false,
		AdminApproval:    false,
	}

	writeErr := database.InsertTransfer(c.Context(), transfer)
	if writeErr == database.ErrDuplicate {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("booking %v already has an outstanding transfer", input.BookingId))
	}
	if writeErr != nil {
		log.Print(writeErr)
		return errors.RaiseInternalServerError(c, "Cannot create Transfer")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": transfer})
}

func UpdateTransfer(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	transferId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	transfer, dbErr := database.GetTransfer(c.Context(), transferId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot update transfer")
	}

	if !caller.IsAdmin() && transfer.Sender != caller.Id {
		return errors.RaisePermissionsError(c,
			fmt.Sprintf("User %v is not authorized to update this transfer", caller.Id.Hex()))
	}

	type TransferUpdate struct {
		Receiver         *string `json:"receiver"`
		BookingId        *string `json:"booking_id"`
		ReceiverApproval *bool   `json:"receiver_approval"`
		AdminApproval    *bool   `json:"admin_approval"`
	}
	update := new(TransferUpdate)
	if err := c.BodyParser(update); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for transfer parameters")
	}

	set := bson.D{}
	if update.Receiver != nil {
		receiver, err := primitive.ObjectIDFromHex(*update.Receiver)
		if err != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("%v is not a valid receiver id", *update.Receiver))
		}
		set = append(set, bson.E{Key: "receiver", Value: receiver})
	}
	if update.BookingId != nil {
		bookingId, err := primitive.ObjectIDFromHex(*update.BookingId)
		if err != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("%v is not a valid booking id", *update.BookingId))
		}
		set = append(set, bson.E{Key: "booking_id", Value: bookingId})
	}
	if update.ReceiverApproval != nil {
		set = append(set, bson.E{Key: "receiver_approval", Value: *update.ReceiverApproval})
	}
	if update.AdminApproval != nil {
		set = append(set, bson.E{Key: "admin_approval", Value: *update.AdminApproval})
	}
	if len(set) == 0 {
		return errors.RaiseBadRequestError(c, "no transfer fields to update")
	}

	updated, updateErr := database.UpdateTransfer(c.Context(), transferId, set)
	if updateErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if updateErr == database.ErrDuplicate {
		return errors.RaiseBadRequestError(c, "booking already has an outstanding transfer")
	}
	if updateErr != nil {
		log.Print(updateErr)
		return errors.RaiseInternalServerError(c, "Cannot update transfer")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": updated})
}

func DeleteTransfer(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	transferId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	transfer, dbErr := database.GetTransfer(c.Context(), transferId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot delete transfer")
	}

	if !caller.IsAdmin() && transfer.Sender != caller.Id {
		return errors.RaisePermissionsError(c,
			fmt.Sprintf("User %v is not authorized to delete this transfer", caller.Id.Hex()))
	}

	deleteErr := database.DeleteTransfer(c.Context(), transferId)
	if deleteErr != nil {
		log.Print(deleteErr)
		return errors.RaiseInternalServerError(c, "Cannot delete transfer")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func ApproveTransfer(c *fiber.Ctx) error {
	caller, callerErr := currentCaller(c)
	if callerErr != nil {
		return errors.RaisePermissionsError(c, "Not authorize to this route")
	}

	transferId, err := parseObjectIDParam(c, "id")
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(err))
	}

	transfer, dbErr := database.GetTransfer(c.Context(), transferId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if dbErr != nil {
		log.Print(dbErr)
		return errors.RaiseInternalServerError(c, "Cannot approve transfer")
	}

	flag, flagErr := approvalFlagFor(transfer, caller)
	if flagErr != nil {
		return errors.RaisePermissionsError(c, fmt.Sprint(flagErr))
	}

	type ApprovalInput struct {
		Approval string `json:"approval"`
	}
	input := new(ApprovalInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, "incorrect input for approval parameters")
	}

	if input.Approval != approvalGranted {
		deleteErr := database.DeleteTransfer(c.Context(), transferId)
		if deleteErr != nil {
			log.Print(deleteErr)
			return errors.RaiseInternalServerError(c, "Cannot approve transfer")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Rejected and deleted transfer"})
	}

	updated, updateErr := database.SetTransferApproval(c.Context(), transferId, flag)
	if updateErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("No transfer with the id of %v", c.Params("id")))
	}
	if updateErr != nil {
		log.Print(updateErr)
		return errors.RaiseInternalServerError(c, "Cannot approve transfer")
	}

	if !updated.FullyApproved() {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": pendingApprovalMessage(updated)})
	}

	// claim guards the single ownership reassignment: with concurrent
	// approvers only one claim succeeds
	claimed, claimErr := database.ClaimApprovedTransfer(c.Context(), transferId)
	if claimErr == database.ErrNotFound {
		booking, bookingErr := database.GetBooking(c.Context(), updated.BookingId)
		if bookingErr == database.ErrNotFound {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": true,
				"message": "Transfer already completed"})
		}
		if bookingErr != nil {
			log.Print(bookingErr)
			return errors.RaiseInternalServerError(c, "Cannot approve transfer")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": booking})
	}
	if claimErr != nil {
		log.Print(claimErr)
		return errors.RaiseInternalServerError(c, "Cannot approve transfer")
	}

	booking, reassignErr := database.UpdateBooking(c.Context(), claimed.BookingId,
		bson.D{{Key: "user", Value: claimed.Receiver}})
	if reassignErr != nil {
		log.Print(reassignErr)
		return errors.RaiseInternalServerError(c, "Cannot approve transfer")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": booking})
}

// approvalFlagFor decides which approval flag the caller's vote sets. A vote
// is attributable to exactly one of two roles: the transfer's receiver or an
// administrator.
func approvalFlagFor(transfer model.Transfer, caller model.Caller) (string, error) {
	if caller.Id == transfer.Receiver {
		return "receiver_approval", nil
	}
	if caller.IsAdmin() {
		return "admin_approval", nil
	}
	return "", fmt.Errorf("User %v is not authorized to approve this transfer", caller.Id.Hex())
}

func pendingApprovalMessage(transfer model.Transfer) string {
	if transfer.AdminApproval {
		return "Wait for receiver approval"
	}
	return "Wait for admin approval"
}
