package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking-api/model"
)

func TestApprovalFlagFor(t *testing.T) {
	sender := primitive.NewObjectID()
	receiver := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	transfer := model.Transfer{
		Id:        primitive.NewObjectID(),
		Sender:    sender,
		Receiver:  receiver,
		BookingId: primitive.NewObjectID(),
	}

	tests := []struct {
		description  string
		caller       model.Caller
		expectedFlag string
		expectError  bool
	}{
		{
			description:  "receiver vote sets receiver approval",
			caller:       model.Caller{Id: receiver, Role: model.RoleUser},
			expectedFlag: "receiver_approval",
		},
		{
			description:  "admin vote sets admin approval",
			caller:       model.Caller{Id: admin, Role: model.RoleAdmin},
			expectedFlag: "admin_approval",
		},
		{
			description:  "receiver who is also admin votes as receiver",
			caller:       model.Caller{Id: receiver, Role: model.RoleAdmin},
			expectedFlag: "receiver_approval",
		},
		{
			description: "sender cannot approve their own transfer",
			caller:      model.Caller{Id: sender, Role: model.RoleUser},
			expectError: true,
		},
		{
			description: "unrelated user cannot approve",
			caller:      model.Caller{Id: stranger, Role: model.RoleUser},
			expectError: true,
		},
	}

	for _, test := range tests {
		flag, err := approvalFlagFor(transfer, test.caller)
		if test.expectError {
			assert.Errorf(t, err, test.description)
		} else {
			assert.NoErrorf(t, err, test.description)
			assert.Equalf(t, test.expectedFlag, flag, test.description)
		}
	}
}

func TestPendingApprovalMessage(t *testing.T) {
	tests := []struct {
		description string
		transfer    model.Transfer
		expected    string
	}{
		{
			description: "nothing approved yet, admin named first",
			transfer:    model.Transfer{},
			expected:    "Wait for admin approval",
		},
		{
			description: "receiver approved, waiting on admin",
			transfer:    model.Transfer{ReceiverApproval: true},
			expected:    "Wait for admin approval",
		},
		{
			description: "admin approved, waiting on receiver",
			transfer:    model.Transfer{AdminApproval: true},
			expected:    "Wait for receiver approval",
		},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, pendingApprovalMessage(test.transfer), test.description)
	}
}

func TestFullyApproved(t *testing.T) {
	assert.False(t, model.Transfer{}.FullyApproved())
	assert.False(t, model.Transfer{ReceiverApproval: true}.FullyApproved())
	assert.False(t, model.Transfer{AdminApproval: true}.FullyApproved())
	assert.True(t, model.Transfer{ReceiverApproval: true, AdminApproval: true}.FullyApproved())
}
