package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) ExistsForJob(ctx context.Context, userID int64, jobID string) (bool, error) {

	var application entities.PipelineApplication
	err := repo.db.WithContext(ctx).
		First(&application, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, translateStoreError(err)
	}
	return true, nil
}

// Create inserts an application. The partial unique index on
// (user_id, job_id) makes a racing duplicate surface here as ErrConflict,
// regardless of what any earlier existence check saw.
func (repo *Applications) Create(ctx context.Context, application *entities.PipelineApplication) error {
	err := repo.db.WithContext(ctx).Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrConflict
	}
	return translateStoreError(err)
}

func (repo *Applications) GetByJob(ctx context.Context, userID int64, jobID string) (*entities.PipelineApplication, error) {

	var application entities.PipelineApplication
	err := repo.db.WithContext(ctx).
		First(&application, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &application, nil
}

func (repo *Applications) CountsByUser(ctx context.Context) (map[int64]int64, error) {
	return countsByUser(ctx, repo.db, &entities.PipelineApplication{}, "job_id IS NOT NULL")
}
