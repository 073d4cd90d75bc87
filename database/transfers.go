package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking-api/model"
)

func FindTransfers(ctx context.Context, filter bson.D) ([]model.Transfer, error) {
	transfers := []model.Transfer{}

	cur, err := TransfersCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading transfers from database: %v", err)
	}
	if err := cur.All(ctx, &transfers); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading transfers from database: %v", err)
	}

	return transfers, nil
}

func GetTransfer(ctx context.Context, id primitive.ObjectID) (model.Transfer, error) {
	var transfer model.Transfer

	err := TransfersCollection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&transfer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Transfer{}, ErrNotFound
	}
	if err != nil {
		return model.Transfer{}, fmt.Errorf("server side problem occured while reading transfer from database: %v", err)
	}

	return transfer, nil
}

// InsertTransfer returns ErrDuplicate when the booking already has an
// outstanding transfer (unique index on booking_id).
func InsertTransfer(ctx context.Context, transfer model.Transfer) error {
	_, err := TransfersCollection.InsertOne(ctx, transfer)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("server side problem occured while writing transfer to database: %v", err)
	}
	return nil
}

func UpdateTransfer(ctx context.Context, id primitive.ObjectID, set bson.D) (model.Transfer, error) {
	var transfer model.Transfer

	after := options.After
	err := TransfersCollection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&transfer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Transfer{}, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return model.Transfer{}, ErrDuplicate
	}
	if err != nil {
		return model.Transfer{}, fmt.Errorf("server side problem occured while updating transfer in database: %v", err)
	}

	return transfer, nil
}

// SetTransferApproval atomically sets one approval flag and returns the
// post-update document, so the caller decides completion on fresh state.
func SetTransferApproval(ctx context.Context, id primitive.ObjectID, flag string) (model.Transfer, error) {
	return UpdateTransfer(ctx, id, bson.D{{Key: flag, Value: true}})
}

// ClaimApprovedTransfer deletes the transfer only if both approvals are set
// and returns the deleted document. With concurrent approvers exactly one
// claim succeeds; the rest get ErrNotFound and must treat completion as
// already done.
func ClaimApprovedTransfer(ctx context.Context, id primitive.ObjectID) (model.Transfer, error) {
	var transfer model.Transfer

	err := TransfersCollection.FindOneAndDelete(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "receiver_approval", Value: true},
		{Key: "admin_approval", Value: true},
	}).Decode(&transfer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Transfer{}, ErrNotFound
	}
	if err != nil {
		return model.Transfer{}, fmt.Errorf("server side problem occured while completing transfer in database: %v", err)
	}

	return transfer, nil
}

// DeleteTransfer treats an already deleted transfer as success, the record
// being gone is the desired outcome either way.
func DeleteTransfer(ctx context.Context, id primitive.ObjectID) error {
	_, err := TransfersCollection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("server side problem occured while deleting transfer from database: %v", err)
	}
	return nil
}
