package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking-api/model"
)

// currentCaller extracts the authenticated identity from the verified token.
// Every handler resolves the caller once and passes it down explicitly.
func currentCaller(c *fiber.Ctx) (model.Caller, error) {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return model.Caller{}, fmt.Errorf("no verified identity in request context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Caller{}, fmt.Errorf("unexpected claims format in token")
	}

	sub, _ := claims["sub"].(string)
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return model.Caller{}, fmt.Errorf("malformed subject in token: %v", err)
	}

	role, _ := claims["role"].(string)

	return model.Caller{Id: id, Role: role}, nil
}

func parseObjectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%v is not a valid id: %v", c.Params(name), err)
	}
	return id, nil
}
