package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"facilpay-api/models/user"
	"facilpay-api/services/token"
	"facilpay-api/types"
)

type fakeStore struct {
	byEmail map[string]*user.User
	byID    map[string]*user.User
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byEmail: make(map[string]*user.User),
		byID:    make(map[string]*user.User),
	}
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := s.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*user.User, error) {
	if u, ok := s.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) Create(_ context.Context, u *user.User) error {
	s.nextID++
	u.ID = fmt.Sprintf("user-%d", s.nextID)
	stored := *u
	s.byEmail[u.Email] = &stored
	s.byID[u.ID] = &stored
	return nil
}

func (s *fakeStore) Save(_ context.Context, u *user.User) error {
	stored := *u
	s.byEmail[u.Email] = &stored
	s.byID[u.ID] = &stored
	return nil
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	tokens := token.NewService("test-secret", time.Hour)
	return NewService(store, tokens), store
}

func TestRegisterReturnsUserWithoutCredential(t *testing.T) {
	svc, store := newTestService()

	u, err := svc.Register(context.Background(), types.RegisterRequest{
		Email:    "jane@x.com",
		Password: "Secret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jane@x.com", u.Email)
	assert.Empty(t, u.Password)

	// The stored record keeps a hash, never the plaintext.
	stored := store.byEmail["jane@x.com"]
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "Secret1", stored.Password)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, types.RegisterRequest{Email: "jane@x.com", Password: "Secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, types.RegisterRequest{Email: "jane@x.com", Password: "Other2x"})
	require.Error(t, err)

	var apiErr *types.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestLoginIssuesTokenAndStripsCredential(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, types.RegisterRequest{Email: "jane@x.com", Password: "Secret1"})
	require.NoError(t, err)

	accessToken, u, err := svc.Login(ctx, types.LoginRequest{Email: "jane@x.com", Password: "Secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, accessToken)
	assert.Equal(t, registered.ID, u.ID)
	assert.Empty(t, u.Password)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, types.RegisterRequest{Email: "jane@x.com", Password: "Secret1"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(ctx, types.LoginRequest{Email: "nobody@x.com", Password: "Secret1"})
	_, _, wrongErr := svc.Login(ctx, types.LoginRequest{Email: "jane@x.com", Password: "Wrong9z"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestValidateUserSwallowsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	assert.Nil(t, svc.ValidateUser(ctx, "missing-id"))

	registered, err := svc.Register(ctx, types.RegisterRequest{Email: "jane@x.com", Password: "Secret1"})
	require.NoError(t, err)

	resolved := svc.ValidateUser(ctx, registered.ID)
	require.NotNil(t, resolved)
	assert.Equal(t, registered.Email, resolved.Email)
	assert.Empty(t, resolved.Password)
}
