package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/swiftfix/booking-app/config"
	"github.com/swiftfix/booking-app/models"
)

// AuthController implements the mock session identity: any well-formed
// credentials succeed, no passwords are stored or verified.
type AuthController struct {
	cfg      config.Config
	validate *validator.Validate
}

func NewAuthController(cfg config.Config) *AuthController {
	return &AuthController{cfg: cfg, validate: validator.New()}
}

// Register creates a session for a new customer.
func (a *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := a.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	user := newSessionUser(input.Name, input.Email)
	return a.respondWithToken(c, fiber.StatusCreated, user)
}

// Login creates a session for a returning customer. The display name
// falls back to the local part of the email address.
func (a *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := a.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	name := strings.SplitN(input.Email, "@", 2)[0]
	user := newSessionUser(name, input.Email)
	return a.respondWithToken(c, fiber.StatusOK, user)
}

// Me returns the identity carried by the current token.
func (a *AuthController) Me(c *fiber.Ctx) error {
	return c.JSON(models.User{
		ID:    c.Locals("userID").(string),
		Name:  c.Locals("userName").(string),
		Email: c.Locals("userEmail").(string),
	})
}

// Logout is a formality: tokens are stateless and simply expire.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

func newSessionUser(name, email string) models.User {
	return models.User{
		ID:    fmt.Sprintf("USR-%d", time.Now().UnixMilli()),
		Name:  name,
		Email: email,
	}
}

func (a *AuthController) respondWithToken(c *fiber.Ctx, status int, user models.User) error {
	token, err := signToken(a.cfg.JWTSecret, jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  "customer",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func signToken(secret string, claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
