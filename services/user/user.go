package user

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"facilpay-api/logger"
	usermodel "facilpay-api/models/user"
	"facilpay-api/services/credential"
	"facilpay-api/types"
)

// Store is the persistence contract for profile management.
type Store interface {
	List(ctx context.Context) ([]usermodel.User, error)
	FindByID(ctx context.Context, id string) (*usermodel.User, error)
	Save(ctx context.Context, u *usermodel.User) error
	Delete(ctx context.Context, id string) error
}

// Service covers the user CRUD surface. Registration itself lives in the auth
// flow; this service only reads and mutates existing accounts.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store) *Service {
	return &Service{store: store, log: logger.Named("UsersService")}
}

func (s *Service) List(ctx context.Context) ([]usermodel.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id string) (*usermodel.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError(fmt.Sprintf("User with ID %s not found", id))
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.Password = ""
	return u, nil
}

// Update applies the provided fields. A new password is re-hashed before
// storage.
func (s *Service) Update(ctx context.Context, id string, req types.UpdateUserRequest) (*usermodel.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError(fmt.Sprintf("User with ID %s not found", id))
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var updatedFields []string
	if req.Email != nil {
		u.Email = *req.Email
		updatedFields = append(updatedFields, "email")
	}
	if req.Password != nil {
		hashed, err := credential.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hashed
	}

	if err := s.store.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if len(updatedFields) > 0 {
		s.log.Info("User updated", zap.String("userId", u.ID), zap.Strings("updatedFields", updatedFields))
	}

	u.Password = ""
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFoundError(fmt.Sprintf("User with ID %s not found", id))
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User removed", zap.String("userId", id))
	return nil
}
