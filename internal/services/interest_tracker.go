package services

import (
	"context"
	"fmt"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type interestRepository interface {
	Upsert(ctx context.Context, userID int64, jobID string, state entities.InterestState) error
	Get(ctx context.Context, userID int64, jobID string) (entities.InterestState, error)
	GetBatch(ctx context.Context, userID int64, jobIDs []string) (map[string]entities.InterestState, error)
	Remove(ctx context.Context, userID int64, jobID string) error
}

type postingStore interface {
	EnsureStored(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error)
}

type InterestTracker struct {
	interests interestRepository
	postings  postingStore
}

func NewInterestTracker(interests interestRepository, postings postingStore) *InterestTracker {
	return &InterestTracker{interests: interests, postings: postings}
}

// SetState marks the user's interest in a posting. When the caller holds a
// not-yet-persisted candidate (e.g. straight from a search result), it is
// stored first so the interest item always references a valid posting. The
// returned id is the one the store resolved to, which may differ from the
// candidate's after URL dedup.
func (t *InterestTracker) SetState(ctx context.Context, userID int64, jobID string,
	state entities.InterestState, candidate *entities.JobPosting) (string, error) {

	if candidate != nil {
		stored, err := t.postings.EnsureStored(ctx, *candidate)
		if err != nil {
			return "", err
		}
		jobID = stored.ID
	}

	if jobID == "" {
		return "", fmt.Errorf("%w: job id is required", entities.ErrValidation)
	}

	if err := t.interests.Upsert(ctx, userID, jobID, state); err != nil {
		return "", err
	}
	return jobID, nil
}

func (t *InterestTracker) GetState(ctx context.Context, userID int64, jobID string) (entities.InterestState, error) {
	return t.interests.Get(ctx, userID, jobID)
}

func (t *InterestTracker) GetStatesBatch(ctx context.Context, userID int64, jobIDs []string) (map[string]entities.InterestState, error) {
	return t.interests.GetBatch(ctx, userID, jobIDs)
}

func (t *InterestTracker) Remove(ctx context.Context, userID int64, jobID string) error {
	return t.interests.Remove(ctx, userID, jobID)
}
