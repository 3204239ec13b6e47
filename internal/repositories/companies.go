package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

// GetByNormalizedName looks up a non-archived company by its persisted
// normalized name. The store-side index replaces the old client-side scan
// over all of a user's companies.
func (repo *Companies) GetByNormalizedName(ctx context.Context, userID int64, normalizedName string) (*entities.Company, error) {

	var company entities.Company
	err := repo.db.WithContext(ctx).
		First(&company, "user_id = ? AND normalized_name = ? AND is_archived = ?", userID, normalizedName, false).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &company, nil
}

// Create inserts a company. A duplicate on (user, normalized name) is
// reported as ErrConflict so the resolver can re-read the winner.
func (repo *Companies) Create(ctx context.Context, company *entities.Company) error {
	err := repo.db.WithContext(ctx).Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrConflict
	}
	return translateStoreError(err)
}
