package repositories

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.JobPosting{})
	if err != nil {
		return fmt.Errorf("failed to migrate JobPosting entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.InterestItem{})
	if err != nil {
		return fmt.Errorf("failed to migrate InterestItem entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Company{})
	if err != nil {
		return fmt.Errorf("failed to migrate Company entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.PipelineApplication{})
	if err != nil {
		return fmt.Errorf("failed to migrate PipelineApplication entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.LegacyCompanyRecord{})
	if err != nil {
		return fmt.Errorf("failed to migrate LegacyCompanyRecord entity: %w", err)
	}

	// The unique indexes below are what turn check-then-act races into
	// store-enforced invariants: duplicate writes surface as constraint
	// violations and are absorbed (postings, companies) or reported as a
	// conflict (applications) by the repositories.
	if err = c.DB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_postings_canonical_url ON job_postings (canonical_url) WHERE canonical_url IS NOT NULL; " +
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_postings_provider_native ON job_postings (provider, provider_native_id) WHERE provider_native_id IS NOT NULL;").
		Error; err != nil {
		return fmt.Errorf("failed to create posting indexes: %w", err)
	}

	if err = c.DB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_user_name ON companies (user_id, normalized_name) WHERE is_archived = 0; " +
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_user_job ON pipeline_applications (user_id, job_id) WHERE job_id IS NOT NULL;").
		Error; err != nil {
		return fmt.Errorf("failed to create tracking indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

// translateStoreError maps gorm errors to the domain taxonomy. Duplicate-key
// errors are intentionally left untouched so callers can absorb them.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return fmt.Errorf("%w: %v", entities.ErrTransientStore, err)
}
