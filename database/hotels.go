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

func GetHotels(ctx context.Context) ([]model.Hotel, error) {
	hotels := []model.Hotel{}

	cur, err := HotelsCollection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading hotels from database: %v", err)
	}
	if err := cur.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading hotels from database: %v", err)
	}

	return hotels, nil
}

func GetHotel(ctx context.Context, id primitive.ObjectID) (model.Hotel, error) {
	var hotel model.Hotel

	err := HotelsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&hotel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Hotel{}, ErrNotFound
	}
	if err != nil {
		return model.Hotel{}, fmt.Errorf("server side problem occured while reading hotel from database: %v", err)
	}

	return hotel, nil
}

func InsertHotel(ctx context.Context, hotel model.Hotel) error {
	_, err := HotelsCollection.InsertOne(ctx, hotel)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("server side problem occured while writing hotel to database: %v", err)
	}
	return nil
}

func UpdateHotel(ctx context.Context, id primitive.ObjectID, set bson.D) (model.Hotel, error) {
	var hotel model.Hotel

	after := options.After
	err := HotelsCollection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&hotel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Hotel{}, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return model.Hotel{}, ErrDuplicate
	}
	if err != nil {
		return model.Hotel{}, fmt.Errorf("server side problem occured while updating hotel in database: %v", err)
	}

	return hotel, nil
}

// DeleteHotel removes the hotel and cascades deletion of its bookings.
func DeleteHotel(ctx context.Context, id primitive.ObjectID) error {
	res, err := HotelsCollection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("server side problem occured while deleting hotel from database: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	_, err = BookingsCollection.DeleteMany(ctx, bson.D{{Key: "hotel", Value: id}})
	if err != nil {
		return fmt.Errorf("server side problem occured while deleting hotel bookings from database: %v", err)
	}
	return nil
}
