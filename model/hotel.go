package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Hotel struct {
	Id      primitive.ObjectID `json:"_id" bson:"_id"`
	Name    string             `json:"name" bson:"name"`
	Address string             `json:"address" bson:"address"`
	Tel     string             `json:"tel" bson:"tel"`
}
