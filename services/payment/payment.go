package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"facilpay-api/logger"
	paymentmodel "facilpay-api/models/payment"
	"facilpay-api/types"
)

// Store is the persistence contract for payment intents.
type Store interface {
	Create(ctx context.Context, p *paymentmodel.Payment) error
	// List returns payments newest first.
	List(ctx context.Context) ([]paymentmodel.Payment, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]paymentmodel.Payment, error)
	FindByID(ctx context.Context, id string) (*paymentmodel.Payment, error)
	Save(ctx context.Context, p *paymentmodel.Payment) error
}

// Service tracks payment intents. Status changes arrive through provider
// webhooks; no payment network is ever called.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store) *Service {
	return &Service{store: store, log: logger.Named("PaymentsService")}
}

func (s *Service) Create(ctx context.Context, req types.CreatePaymentRequest) (*paymentmodel.Payment, error) {
	p := &paymentmodel.Payment{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Status:      paymentmodel.StatusPending,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment intent created",
		zap.String("paymentId", p.ID),
		zap.Float64("amount", p.Amount),
		zap.String("currency", p.Currency),
	)
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]paymentmodel.Payment, error) {
	return s.store.List(ctx)
}

// ListToday returns the payments created since the local start of day.
func (s *Service) ListToday(ctx context.Context) ([]paymentmodel.Payment, error) {
	return s.store.ListCreatedSince(ctx, now.BeginningOfDay())
}

func (s *Service) Get(ctx context.Context, id string) (*paymentmodel.Payment, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError(fmt.Sprintf("Payment with ID %s not found", id))
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return p, nil
}

// HandleWebhook applies a provider status update to an existing payment.
func (s *Service) HandleWebhook(ctx context.Context, req types.PaymentWebhookRequest) (*paymentmodel.Payment, error) {
	p, err := s.Get(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	p.Status = req.Status
	if req.ExternalReference != "" {
		p.ExternalReference = req.ExternalReference
	}

	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	s.log.Info("Payment status updated",
		zap.String("paymentId", p.ID),
		zap.String("status", p.Status),
	)
	return p, nil
}
