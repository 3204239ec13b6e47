package repositories

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type postingSource interface {
	GetByID(ctx context.Context, id string) (*entities.JobPosting, error)
	EnsureStored(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error)
}

// CachedPostings is a read-through cache over posting lookups. Postings are
// immutable after ingestion, so cached copies can never go stale.
type CachedPostings struct {
	repo  postingSource
	cache *gocache.Cache
}

func NewCachedPostings(repo postingSource) *CachedPostings {
	return &CachedPostings{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c CachedPostings) GetByID(ctx context.Context, id string) (*entities.JobPosting, error) {
	if value, found := c.cache.Get(id); found {
		posting := value.(entities.JobPosting)
		return &posting, nil
	}

	posting, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Add(id, *posting, gocache.DefaultExpiration); err != nil {
		return posting, nil
	}
	return posting, nil
}

// EnsureStored warms the cache with whichever record the store resolved to,
// which is not necessarily the candidate passed in.
func (c CachedPostings) EnsureStored(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error) {
	posting, err := c.repo.EnsureStored(ctx, candidate)
	if err != nil {
		return nil, err
	}
	c.cache.Set(posting.ID, *posting, gocache.DefaultExpiration)
	return posting, nil
}
