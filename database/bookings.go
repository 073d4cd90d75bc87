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

func FindBookings(ctx context.Context, filter bson.D) ([]model.Booking, error) {
	bookings := []model.Booking{}

	cur, err := BookingsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}

	return bookings, nil
}

func GetBooking(ctx context.Context, id primitive.ObjectID) (model.Booking, error) {
	var booking model.Booking

	err := BookingsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("server side problem occured while reading booking from database: %v", err)
	}

	return booking, nil
}

func InsertBooking(ctx context.Context, booking model.Booking) error {
	_, err := BookingsCollection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("server side problem occured while writing booking to database: %v", err)
	}
	return nil
}

func UpdateBooking(ctx context.Context, id primitive.ObjectID, set bson.D) (model.Booking, error) {
	var booking model.Booking

	after := options.After
	err := BookingsCollection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("server side problem occured while updating booking in database: %v", err)
	}

	return booking, nil
}

func DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	res, err := BookingsCollection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("server side problem occured while deleting booking from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
