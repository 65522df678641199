package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
	"github.com/neoverse/academy-backend/internal/types"
	"github.com/neoverse/academy-backend/internal/utils"
)

// updatableUserFields is the whitelist for partial updates. Anything else,
// internal ids included, is rejected with the offending field named.
var updatableUserFields = map[string]struct{}{
	"username": {},
	"email":    {},
	"password": {},
	"progress": {},
}

type UserService interface {
	List(ctx context.Context) ([]*types.User, error)
	Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*types.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, userTokenRepo repos.UserTokenRepo) UserService {
	return &userService{
		db:            db,
		log:           log.With("service", "UserService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
	}
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	users, err := us.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (us *userService) Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*types.User, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrBadRequest)
	}

	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if _, ok := updatableUserFields[key]; !ok {
			return nil, fmt.Errorf("%w: invalid field: %s", ErrBadRequest, key)
		}
		str, isString := value.(string)
		switch key {
		case "password":
			if !isString || str == "" {
				return nil, fmt.Errorf("%w: password must be a non-empty string", ErrBadRequest)
			}
			hashed, err := utils.HashPassword(str)
			if err != nil {
				return nil, err
			}
			updates["password"] = hashed
		case "username", "email":
			if !isString || strings.TrimSpace(str) == "" {
				return nil, fmt.Errorf("%w: %s must be a non-empty string", ErrBadRequest, key)
			}
			str = strings.TrimSpace(str)
			if key == "email" {
				// Login resolves emails lowercased, so a stored email must be too.
				str = strings.ToLower(str)
			}
			updates[key] = str
		case "progress":
			num, isNumber := value.(float64)
			if !isNumber || num < 0 || num != math.Trunc(num) {
				return nil, fmt.Errorf("%w: progress must be a non-negative integer", ErrBadRequest)
			}
			updates["progress"] = int(num)
		}
	}

	var updated *types.User
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{userID})
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		if len(found) == 0 {
			return fmt.Errorf("%w: user with id %s does not exist", ErrNotFound, userID)
		}
		if err := us.userRepo.UpdateFields(ctx, tx, userID, updates); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		refreshed, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{userID})
		if err != nil {
			return fmt.Errorf("failed to reload user: %w", err)
		}
		updated = refreshed[0]
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (us *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := us.userTokenRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{userID}); err != nil {
			return fmt.Errorf("failed to delete user tokens: %w", err)
		}
		deleted, err := us.userRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{userID})
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: user with id %s does not exist", ErrNotFound, userID)
		}
		us.log.Info("Deleted user", "user_id", userID)
		return nil
	})
}
