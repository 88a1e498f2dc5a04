package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status values a payment intent moves through.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Payment is a tracked payment intent. Status transitions come from provider
// webhooks; the record itself never touches a payment network.
type Payment struct {
	ID                string  `gorm:"type:uuid;primaryKey" json:"id"`
	Amount            float64 `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency          string  `gorm:"type:varchar(3);not null" json:"currency"`
	Description       string  `gorm:"type:varchar(500)" json:"description,omitempty"`
	Status            string  `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ExternalReference string  `gorm:"type:varchar(255)" json:"external_reference,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
