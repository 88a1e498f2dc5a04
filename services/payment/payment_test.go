package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	paymentmodel "facilpay-api/models/payment"
	"facilpay-api/types"
)

type fakeStore struct {
	payments  map[string]*paymentmodel.Payment
	nextID    int
	lastSince time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{payments: make(map[string]*paymentmodel.Payment)}
}

func (s *fakeStore) Create(_ context.Context, p *paymentmodel.Payment) error {
	s.nextID++
	p.ID = fmt.Sprintf("pay-%d", s.nextID)
	p.CreatedAt = time.Now()
	stored := *p
	s.payments[p.ID] = &stored
	return nil
}

func (s *fakeStore) List(_ context.Context) ([]paymentmodel.Payment, error) {
	var out []paymentmodel.Payment
	for _, p := range s.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeStore) ListCreatedSince(_ context.Context, since time.Time) ([]paymentmodel.Payment, error) {
	s.lastSince = since
	var out []paymentmodel.Payment
	for _, p := range s.payments {
		if !p.CreatedAt.Before(since) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*paymentmodel.Payment, error) {
	if p, ok := s.payments[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) Save(_ context.Context, p *paymentmodel.Payment) error {
	stored := *p
	s.payments[p.ID] = &stored
	return nil
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newFakeStore())

	p, err := svc.Create(context.Background(), types.CreatePaymentRequest{
		Amount:      100.50,
		Currency:    "USD",
		Description: "Payment for order #12345",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, paymentmodel.StatusPending, p.Status)
	assert.Equal(t, 100.50, p.Amount)
}

func TestHandleWebhookUpdatesStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, types.CreatePaymentRequest{Amount: 10, Currency: "USD"})
	require.NoError(t, err)

	updated, err := svc.HandleWebhook(ctx, types.PaymentWebhookRequest{
		PaymentID:         created.ID,
		Status:            paymentmodel.StatusCompleted,
		ExternalReference: "ext_ref_12345",
	})
	require.NoError(t, err)

	assert.Equal(t, paymentmodel.StatusCompleted, updated.Status)
	assert.Equal(t, "ext_ref_12345", updated.ExternalReference)

	persisted, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, paymentmodel.StatusCompleted, persisted.Status)
}

func TestHandleWebhookUnknownPayment(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.HandleWebhook(context.Background(), types.PaymentWebhookRequest{
		PaymentID: "missing",
		Status:    paymentmodel.StatusFailed,
	})
	require.Error(t, err)

	var apiErr *types.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestListTodayUsesDayBoundary(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.ListToday(context.Background())
	require.NoError(t, err)

	since := store.lastSince
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, 0, since.Minute())
	assert.Equal(t, time.Now().Day(), since.Day())
}
