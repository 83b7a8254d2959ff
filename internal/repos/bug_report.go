package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

type BugReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.BugReport) ([]*types.BugReport, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BugReport, error)
	// GetAll lists reports newest first, optionally filtered by status.
	GetAll(ctx context.Context, tx *gorm.DB, status string) ([]*types.BugReport, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.BugReport) error
}

type bugReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBugReportRepo(db *gorm.DB, baseLog *logger.Logger) BugReportRepo {
	return &bugReportRepo{db: db, log: baseLog.With("repo", "BugReportRepo")}
}

func (r *bugReportRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.BugReport) ([]*types.BugReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.BugReport{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bugReportRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BugReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BugReport
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bugReportRepo) GetAll(ctx context.Context, tx *gorm.DB, status string) ([]*types.BugReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var results []*types.BugReport
	if err := query.
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bugReportRepo) Save(ctx context.Context, tx *gorm.DB, row *types.BugReport) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(row).Error
}
