package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/metrics"
)

type Postings struct {
	db *gorm.DB
}

func NewPostingsRepository(db *gorm.DB) *Postings {
	return &Postings{db: db}
}

func (repo *Postings) GetByID(ctx context.Context, id string) (*entities.JobPosting, error) {

	var posting entities.JobPosting
	if err := repo.db.WithContext(ctx).First(&posting, "id = ?", id).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &posting, nil
}

func (repo *Postings) GetByCanonicalURL(ctx context.Context, url string) (*entities.JobPosting, error) {

	var posting entities.JobPosting
	if err := repo.db.WithContext(ctx).First(&posting, "canonical_url = ?", url).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &posting, nil
}

func (repo *Postings) getByProviderRef(ctx context.Context, provider, nativeID string) (*entities.JobPosting, error) {

	var posting entities.JobPosting
	err := repo.db.WithContext(ctx).
		First(&posting, "provider = ? AND provider_native_id = ?", provider, nativeID).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &posting, nil
}

// EnsureStored is the idempotent ingestion entry point. First write wins:
// an already-known id or canonical URL returns the existing record untouched.
// A duplicate-key failure on insert means a concurrent caller won the race,
// so the record is re-read and returned instead of surfacing an error.
func (repo *Postings) EnsureStored(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error) {

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	} else {
		existing, err := repo.GetByID(ctx, candidate.ID)
		if err == nil {
			metrics.IngestedPostingsCounter.WithLabelValues("id_hit").Inc()
			return existing, nil
		}
		if !errors.Is(err, entities.ErrNotFound) {
			return nil, err
		}
	}

	if candidate.CanonicalURL != nil {
		existing, err := repo.GetByCanonicalURL(ctx, *candidate.CanonicalURL)
		if err == nil {
			metrics.IngestedPostingsCounter.WithLabelValues("url_hit").Inc()
			return existing, nil
		}
		if !errors.Is(err, entities.ErrNotFound) {
			return nil, err
		}
	}

	candidate.IngestedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.reReadAfterRace(ctx, candidate)
		}
		return nil, translateStoreError(err)
	}

	metrics.IngestedPostingsCounter.WithLabelValues("inserted").Inc()
	return &candidate, nil
}

func (repo *Postings) reReadAfterRace(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error) {

	metrics.IngestedPostingsCounter.WithLabelValues("race_absorbed").Inc()

	if existing, err := repo.GetByID(ctx, candidate.ID); err == nil {
		return existing, nil
	}

	if candidate.CanonicalURL != nil {
		if existing, err := repo.GetByCanonicalURL(ctx, *candidate.CanonicalURL); err == nil {
			return existing, nil
		}
	}

	if candidate.ProviderNativeID != nil {
		if existing, err := repo.getByProviderRef(ctx, candidate.Provider, *candidate.ProviderNativeID); err == nil {
			return existing, nil
		}
	}

	// the winning record should exist by now; treat its absence as transient
	return nil, fmt.Errorf("%w: record not readable after duplicate-key insert", entities.ErrTransientStore)
}
