package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumberOfNights(t *testing.T) {
	tests := []struct {
		description string
		nights      int
		expectError bool
	}{
		{description: "zero nights rejected", nights: 0, expectError: true},
		{description: "one night accepted", nights: 1, expectError: false},
		{description: "two nights accepted", nights: 2, expectError: false},
		{description: "three nights accepted", nights: 3, expectError: false},
		{description: "four nights rejected", nights: 4, expectError: true},
		{description: "negative nights rejected", nights: -1, expectError: true},
	}

	for _, test := range tests {
		err := validateNumberOfNights(test.nights)
		if test.expectError {
			assert.Errorf(t, err, test.description)
		} else {
			assert.NoErrorf(t, err, test.description)
		}
	}
}

func TestValidateBookingDate(t *testing.T) {
	now := time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		description string
		bookingDate time.Time
		expectError bool
	}{
		{
			description: "yesterday rejected",
			bookingDate: now.AddDate(0, 0, -1),
			expectError: true,
		},
		{
			description: "today rejected",
			bookingDate: now,
			expectError: true,
		},
		{
			description: "later today still rejected",
			bookingDate: time.Date(2023, time.March, 15, 23, 0, 0, 0, time.UTC),
			expectError: true,
		},
		{
			description: "tomorrow accepted",
			bookingDate: now.AddDate(0, 0, 1),
			expectError: false,
		},
		{
			description: "next year accepted",
			bookingDate: now.AddDate(1, 0, 0),
			expectError: false,
		},
	}

	for _, test := range tests {
		err := validateBookingDate(test.bookingDate, now)
		if test.expectError {
			assert.Errorf(t, err, test.description)
		} else {
			assert.NoErrorf(t, err, test.description)
		}
	}
}
