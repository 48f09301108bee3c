package waste

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sustainable-bao-backend/entities"
)

type (
	WasteRepository interface {
		SaveSnapshot(ctx context.Context, snapshot *entities.WasteSnapshot) error
		GetSnapshot(ctx context.Context, userID string, weekStart time.Time) (*entities.WasteSnapshot, error)
		GetWeeklySnapshots(ctx context.Context, userID string, weeks int) ([]*entities.WasteSnapshot, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) SaveSnapshot(ctx context.Context, snapshot *entities.WasteSnapshot) error {
	return r.db.WithContext(ctx).Save(snapshot).Error
}

func (r *wasteRepository) GetSnapshot(ctx context.Context, userID string, weekStart time.Time) (*entities.WasteSnapshot, error) {
	var snapshot entities.WasteSnapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *wasteRepository) GetWeeklySnapshots(ctx context.Context, userID string, weeks int) ([]*entities.WasteSnapshot, error) {
	var snapshots []*entities.WasteSnapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start desc").
		Limit(weeks).
		Find(&snapshots).Error; err != nil {
		return nil, err
	}

	// Most recent window, returned in chronological order.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}
	return snapshots, nil
}
