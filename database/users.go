package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hotel-booking-api/model"
)

func GetUserData(ctx context.Context, userLogin string) (model.UserData, error) {
	var user model.UserData

	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	for cur.Next(ctx) {
		err := cur.Decode(&user)
		if err != nil {
			return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	cur.Close(ctx)

	return user, nil
}

func GetUser(ctx context.Context, id primitive.ObjectID) (model.UserData, error) {
	var user model.UserData

	err := UsersCollection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.UserData{}, ErrNotFound
	}
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	return user, nil
}
