package types

// CreatePaymentRequest is the payload for creating a payment intent.
type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PaymentWebhookRequest is the payload a payment provider posts to update a
// payment's status.
type PaymentWebhookRequest struct {
	PaymentID         string `json:"paymentId" validate:"required,uuid4"`
	Status            string `json:"status" validate:"required,oneof=pending completed failed"`
	ExternalReference string `json:"externalReference,omitempty" validate:"omitempty,max=255"`
}
