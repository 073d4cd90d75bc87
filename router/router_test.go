package router

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type Test struct {
	description  string
	method       string
	route        string
	expectedCode int
}

// Every protected route must reject a request carrying no token before any
// handler logic runs.
func TestProtectedRoutesRequireToken(t *testing.T) {
	tests := []Test{
		{
			description:  "list bookings without token",
			method:       "GET",
			route:        "/bookings",
			expectedCode: 400,
		},
		{
			description:  "get booking without token",
			method:       "GET",
			route:        "/bookings/635a11111111111111111111",
			expectedCode: 400,
		},
		{
			description:  "update booking without token",
			method:       "PUT",
			route:        "/bookings/635a11111111111111111111",
			expectedCode: 400,
		},
		{
			description:  "delete booking without token",
			method:       "DELETE",
			route:        "/bookings/635a11111111111111111111",
			expectedCode: 400,
		},
		{
			description:  "create booking without token",
			method:       "POST",
			route:        "/hotels/635a22222222222222222222/bookings",
			expectedCode: 400,
		},
		{
			description:  "list transfers without token",
			method:       "GET",
			route:        "/transfers",
			expectedCode: 400,
		},
		{
			description:  "create transfer without token",
			method:       "POST",
			route:        "/transfers",
			expectedCode: 400,
		},
		{
			description:  "approve transfer without token",
			method:       "PUT",
			route:        "/transfers/approve/635a33333333333333333333",
			expectedCode: 400,
		},
		{
			description:  "create hotel without token",
			method:       "POST",
			route:        "/hotels",
			expectedCode: 400,
		},
	}

	app := fiber.New()
	SetupRoutes(app)

	for _, test := range tests {
		req, _ := http.NewRequest(test.method, test.route, nil)

		res, err := app.Test(req, -1)
		if err != nil {
			assert.Failf(t, "request failed", "%v: %v", test.description, err)
			continue
		}

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}

func TestProtectedRoutesRejectGarbageToken(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	req, _ := http.NewRequest("GET", "/bookings", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 401, res.StatusCode)
}
