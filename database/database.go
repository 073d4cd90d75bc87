package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking-api/config"
)

var HotelsCollection *mongo.Collection
var BookingsCollection *mongo.Collection
var TransfersCollection *mongo.Collection
var UsersCollection *mongo.Collection

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique index rejects a write.
var ErrDuplicate = errors.New("record already exists")

func DBInit(ctx context.Context) error {
	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return fmt.Errorf("db is not available: %v", err)
	}

	db := client.Database("hotel-booking")
	HotelsCollection = db.Collection("hotels")
	BookingsCollection = db.Collection("bookings")
	TransfersCollection = db.Collection("transfers")
	UsersCollection = db.Collection("users")

	return ensureIndexes(ctx)
}

// ensureIndexes creates the unique indexes the business rules rely on:
// at most one outstanding transfer per booking, hotel names unique.
func ensureIndexes(ctx context.Context) error {
	_, err := TransfersCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "booking_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cannot create transfers index: %v", err)
	}

	_, err = HotelsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("cannot create hotels index: %v", err)
	}

	return nil
}
