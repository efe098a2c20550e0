package repo

import (
	"FrameVault/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// FrameRepo persists frame metadata.
type FrameRepo interface {
	Create(ctx context.Context, frame *model.Frame) error
	// FindByIDs returns the frames matching ids, in store order. Unknown
	// ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uint64) ([]model.Frame, error)
	// DeleteByIDs removes all matching rows in a single bulk delete.
	DeleteByIDs(ctx context.Context, ids []uint64) error
}

// GormFrameRepo implements FrameRepo on a gorm connection.
type GormFrameRepo struct {
	db *gorm.DB
}

// NewGormFrameRepo builds a FrameRepo from a gorm connection.
func NewGormFrameRepo(db *gorm.DB) *GormFrameRepo {
	return &GormFrameRepo{db: db}
}

func (r *GormFrameRepo) Create(ctx context.Context, frame *model.Frame) error {
	if err := r.db.WithContext(ctx).Create(frame).Error; err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	return nil
}

func (r *GormFrameRepo) FindByIDs(ctx context.Context, ids []uint64) ([]model.Frame, error) {
	frames := make([]model.Frame, 0, len(ids))
	if len(ids) == 0 {
		return frames, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&frames).Error; err != nil {
		return nil, fmt.Errorf("find frames: %w", err)
	}
	return frames, nil
}

func (r *GormFrameRepo) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Frame{}).Error; err != nil {
		return fmt.Errorf("delete frames: %w", err)
	}
	return nil
}
