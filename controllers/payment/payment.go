package payment

import (
	"github.com/gofiber/fiber/v2"

	paymentservice "facilpay-api/services/payment"
	"facilpay-api/types"
)

type PaymentController struct {
	paymentService *paymentservice.Service
}

func NewPaymentController(paymentService *paymentservice.Service) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req types.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return types.NewBadRequestError("Invalid request body")
	}
	if validationErr := types.Validate(req); validationErr != nil {
		return validationErr
	}

	p, err := h.paymentService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PaymentController) List(c *fiber.Ctx) error {
	payments, err := h.paymentService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

// ListToday returns the payments created since the start of the current day.
func (h *PaymentController) ListToday(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListToday(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

func (h *PaymentController) Get(c *fiber.Ctx) error {
	p, err := h.paymentService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Webhook applies a provider status update.
func (h *PaymentController) Webhook(c *fiber.Ctx) error {
	var req types.PaymentWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return types.NewBadRequestError("Invalid request body")
	}
	if validationErr := types.Validate(req); validationErr != nil {
		return validationErr
	}

	p, err := h.paymentService.HandleWebhook(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(p)
}
