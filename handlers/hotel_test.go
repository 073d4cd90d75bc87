package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking-api/model"
)

func TestIsValidHotelName(t *testing.T) {
	assert.Error(t, isValidHotelName(""))
	assert.Error(t, isValidHotelName("A"))
	assert.NoError(t, isValidHotelName("Grand Plaza"))
	assert.Error(t, isValidHotelName(strings.Repeat("a", 51)))
	assert.NoError(t, isValidHotelName(strings.Repeat("a", 50)))
}

func TestValidateHotelInput(t *testing.T) {
	tests := []struct {
		description string
		hotel       model.Hotel
		expectError bool
	}{
		{
			description: "complete hotel accepted",
			hotel:       model.Hotel{Name: "Grand Plaza", Address: "1 Main St", Tel: "+1 555-123-4567"},
			expectError: false,
		},
		{
			description: "missing address rejected",
			hotel:       model.Hotel{Name: "Grand Plaza", Tel: "+1 555-123-4567"},
			expectError: true,
		},
		{
			description: "malformed telephone rejected",
			hotel:       model.Hotel{Name: "Grand Plaza", Address: "1 Main St", Tel: "call me"},
			expectError: true,
		},
		{
			description: "local telephone format accepted",
			hotel:       model.Hotel{Name: "Grand Plaza", Address: "1 Main St", Tel: "555.123.4567"},
			expectError: false,
		},
	}

	for _, test := range tests {
		err := validateHotelInput(test.hotel)
		if test.expectError {
			assert.Errorf(t, err, test.description)
		} else {
			assert.NoErrorf(t, err, test.description)
		}
	}
}
