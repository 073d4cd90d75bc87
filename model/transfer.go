package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Transfer is a pending handoff of a booking from sender to receiver.
// It only exists while approvals are outstanding: once both flags are set
// the booking owner is reassigned and the record is deleted.
type Transfer struct {
	Id               primitive.ObjectID `json:"_id" bson:"_id"`
	Sender           primitive.ObjectID `json:"sender" bson:"sender"`
	Receiver         primitive.ObjectID `json:"receiver" bson:"receiver"`
	BookingId        primitive.ObjectID `json:"booking_id" bson:"booking_id"`
	ReceiverApproval bool               `json:"receiver_approval" bson:"receiver_approval"`
	AdminApproval    bool               `json:"admin_approval" bson:"admin_approval"`
}

func (t Transfer) FullyApproved() bool {
	return t.ReceiverApproval && t.AdminApproval
}
