package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Caller is the authenticated identity a request acts as. Handlers extract
// it from the verified token once and pass it down explicitly.
type Caller struct {
	Id   primitive.ObjectID
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
