package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/types"
)

type ModuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, modules []*types.Module) ([]*types.Module, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Module, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) ([]*types.Module, error)
	GetByTitles(ctx context.Context, tx *gorm.DB, titles []string) ([]*types.Module, error)
}

type moduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	return &moduleRepo{db: db, log: baseLog.With("repo", "ModuleRepo")}
}

func (mr *moduleRepo) Create(ctx context.Context, tx *gorm.DB, modules []*types.Module) ([]*types.Module, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(modules) == 0 {
		return []*types.Module{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (mr *moduleRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Module, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Module
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *moduleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uuid.UUID) ([]*types.Module, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Module
	if len(moduleIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", moduleIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *moduleRepo) GetByTitles(ctx context.Context, tx *gorm.DB, titles []string) ([]*types.Module, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Module
	if len(titles) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("title IN ?", titles).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
