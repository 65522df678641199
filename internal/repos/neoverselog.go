package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/types"
)

// NeoverseLogRepo is append-only: records are bulk-inserted once at startup
// and never mutated.
type NeoverseLogRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, logs []*types.NeoverseLog) ([]*types.NeoverseLog, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	GetByPlayerIDs(ctx context.Context, tx *gorm.DB, playerIDs []string) ([]*types.NeoverseLog, error)
}

type neoverseLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNeoverseLogRepo(db *gorm.DB, baseLog *logger.Logger) NeoverseLogRepo {
	return &neoverseLogRepo{db: db, log: baseLog.With("repo", "NeoverseLogRepo")}
}

func (nr *neoverseLogRepo) CreateBatch(ctx context.Context, tx *gorm.DB, logs []*types.NeoverseLog) ([]*types.NeoverseLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if len(logs) == 0 {
		return []*types.NeoverseLog{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&logs, 500).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (nr *neoverseLogRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.NeoverseLog{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (nr *neoverseLogRepo) GetByPlayerIDs(ctx context.Context, tx *gorm.DB, playerIDs []string) ([]*types.NeoverseLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var results []*types.NeoverseLog
	if len(playerIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("player_id IN ?", playerIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
