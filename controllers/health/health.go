package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health reports overall service status with a live database probe.
func (h *HealthController) Health(c *fiber.Ctx) error {
	connected := true
	message := "Database connection is healthy"
	if err := h.db.WithContext(c.UserContext()).Exec("SELECT 1").Error; err != nil {
		connected = false
		message = err.Error()
	}

	status := "ok"
	if !connected {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"services": fiber.Map{
			"database": fiber.Map{
				"connected": connected,
				"message":   message,
			},
		},
	})
}

// Root is the banner endpoint.
func (h *HealthController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "FacilPay API running"})
}
