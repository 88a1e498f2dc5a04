package user

import (
	"github.com/gofiber/fiber/v2"

	authservice "facilpay-api/services/auth"
	userservice "facilpay-api/services/user"
	"facilpay-api/types"
)

type UserController struct {
	userService *userservice.Service
	authService *authservice.Service
}

func NewUserController(userService *userservice.Service, authService *authservice.Service) *UserController {
	return &UserController{userService: userService, authService: authService}
}

// Create is the public user-creation endpoint. It shares the registration
// flow so duplicate emails are rejected before the storage layer is hit.
func (h *UserController) Create(c *fiber.Ctx) error {
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

	return c.Status(fiber.StatusCreated).JSON(u)
}

func (h *UserController) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *UserController) Get(c *fiber.Ctx) error {
	u, err := h.userService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *UserController) Update(c *fiber.Ctx) error {
	var req types.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return types.NewBadRequestError("Invalid request body")
	}
	if validationErr := types.Validate(req); validationErr != nil {
		return validationErr
	}

	u, err := h.userService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *UserController) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
