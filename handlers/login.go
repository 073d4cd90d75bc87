package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"hotel-booking-api/config"
	"hotel-booking-api/database"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error on login request when parse credentials"})
	}

	user, geterr := database.GetUserData(c.Context(), creds.Login)
	if geterr != nil {
		log.Print(geterr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error on login request when comparing user data"})
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid password"})
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = user.Id.Hex()
	claims["username"] = user.Login
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	sign, enverr := config.GetSecret("SIGN")
	if enverr != nil {
		log.Print(enverr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		log.Print(fmt.Errorf("cannot sign token: %v", err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Success login", "data": t})
}
