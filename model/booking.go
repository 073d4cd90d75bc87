package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	BookingDate    time.Time          `json:"booking_date" bson:"booking_date"`
	NumberOfNights int                `json:"number_of_nights" bson:"number_of_nights"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Hotel          primitive.ObjectID `json:"hotel" bson:"hotel"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// BookingUpdate carries the updatable booking fields, nil means "leave as is".
type BookingUpdate struct {
	BookingDate    *time.Time `json:"booking_date"`
	NumberOfNights *int       `json:"number_of_nights"`
}
