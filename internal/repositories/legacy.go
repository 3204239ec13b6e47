package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type LegacyRecords struct {
	db *gorm.DB
}

func NewLegacyRecordsRepository(db *gorm.DB) *LegacyRecords {
	return &LegacyRecords{db: db}
}

func (repo *LegacyRecords) Add(ctx context.Context, record *entities.LegacyCompanyRecord) error {
	return translateStoreError(repo.db.WithContext(ctx).Create(record).Error)
}

func (repo *LegacyRecords) CountsByUser(ctx context.Context) (map[int64]int64, error) {
	return countsByUser(ctx, repo.db, &entities.LegacyCompanyRecord{}, "")
}

type userCount struct {
	UserID int64
	Count  int64
}

func countsByUser(ctx context.Context, db *gorm.DB, model any, filter string) (map[int64]int64, error) {

	query := db.WithContext(ctx).Model(model).
		Select("user_id", "count(*) as count").
		Group("user_id")
	if filter != "" {
		query = query.Where(filter)
	}

	var counts []userCount
	if err := query.Find(&counts).Error; err != nil {
		return nil, translateStoreError(err)
	}

	result := make(map[int64]int64, len(counts))
	for _, c := range counts {
		result[c.UserID] = c.Count
	}
	return result, nil
}
