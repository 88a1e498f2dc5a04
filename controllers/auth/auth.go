package auth

import (
	"github.com/gofiber/fiber/v2"

	authservice "facilpay-api/services/auth"
	"facilpay-api/types"
)

type AuthController struct {
	authService *authservice.Service
}

func NewAuthController(authService *authservice.Service) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a new account and returns it without the credential.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return types.NewBadRequestError("Invalid request body")
	}
	if validationErr := types.Validate(req); validationErr != nil {
		return validationErr
	}

	u, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    u,
	})
}

// Login verifies credentials and returns an access token plus the account.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return types.NewBadRequestError("Invalid request body")
	}
	if validationErr := types.Validate(req); validationErr != nil {
		return validationErr
	}

	accessToken, u, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"user":         u,
	})
}
