package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type Interests struct {
	db *gorm.DB
}

func NewInterestsRepository(db *gorm.DB) *Interests {
	return &Interests{db: db}
}

// Upsert writes the requested state for (user, job), overwriting any previous
// state. Last write wins by arrival order at the store.
func (repo *Interests) Upsert(ctx context.Context, userID int64, jobID string, state entities.InterestState) error {

	now := time.Now().UTC()
	item := entities.InterestItem{
		UserID:    userID,
		JobID:     jobID,
		State:     state,
		UpdatedAt: now,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]any{"state": state, "updated_at": now}),
	}).Create(&item).Error

	return translateStoreError(err)
}

func (repo *Interests) Get(ctx context.Context, userID int64, jobID string) (entities.InterestState, error) {

	var item entities.InterestItem
	err := repo.db.WithContext(ctx).
		First(&item, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", translateStoreError(err)
	}
	return item.State, nil
}

func (repo *Interests) GetBatch(ctx context.Context, userID int64, jobIDs []string) (map[string]entities.InterestState, error) {

	if len(jobIDs) == 0 {
		return map[string]entities.InterestState{}, nil
	}

	var items []entities.InterestItem
	err := repo.db.WithContext(ctx).
		Find(&items, "user_id = ? AND job_id IN ?", userID, jobIDs).Error
	if err != nil {
		return nil, translateStoreError(err)
	}

	return lo.Associate(items, func(item entities.InterestItem) (string, entities.InterestState) {
		return item.JobID, item.State
	}), nil
}

// Remove deletes the item for (user, job); removing an absent item is a no-op.
func (repo *Interests) Remove(ctx context.Context, userID int64, jobID string) error {
	err := repo.db.WithContext(ctx).
		Delete(&entities.InterestItem{}, "user_id = ? AND job_id = ?", userID, jobID).Error
	return translateStoreError(err)
}
