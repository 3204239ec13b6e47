package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

func Test_SetState_WithCandidate_StoresPostingFirst(t *testing.T) {

	repos := newTestRepos(t)
	tracker := NewInterestTracker(repos.interests, repos.postings)
	ctx := context.Background()

	jobID, err := tracker.SetState(ctx, 1, "", entities.InterestSaved, &entities.JobPosting{
		Provider:    "aggregate",
		Title:       "Backend Engineer",
		CompanyName: "Acme Corp",
	})
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	state, err := tracker.GetState(ctx, 1, jobID)
	assert.NoError(t, err)
	assert.Equal(t, entities.InterestSaved, state)

	_, err = repos.postings.GetByID(ctx, jobID)
	assert.NoError(t, err)
}

func Test_SetState_DedupedCandidate_ReturnsCanonicalID(t *testing.T) {

	repos := newTestRepos(t)
	tracker := NewInterestTracker(repos.interests, repos.postings)
	ctx := context.Background()

	url := "https://jobs.example.com/123"
	stored, err := repos.postings.EnsureStored(ctx, entities.JobPosting{
		Provider:     "aggregate",
		CanonicalURL: &url,
		Title:        "Backend Engineer",
		CompanyName:  "Acme Corp",
	})
	require.NoError(t, err)

	jobID, err := tracker.SetState(ctx, 1, "", entities.InterestHidden, &entities.JobPosting{
		Provider:     "other",
		CanonicalURL: &url,
		Title:        "Backend Engineer",
		CompanyName:  "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, jobID)
}

func Test_SetState_OverwritesPreviousState(t *testing.T) {

	repos := newTestRepos(t)
	tracker := NewInterestTracker(repos.interests, repos.postings)
	ctx := context.Background()
	posting := storedPosting(t, repos)

	_, err := tracker.SetState(ctx, 1, posting.ID, entities.InterestSaved, nil)
	require.NoError(t, err)

	_, err = tracker.SetState(ctx, 1, posting.ID, entities.InterestApplied, nil)
	require.NoError(t, err)

	state, err := tracker.GetState(ctx, 1, posting.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.InterestApplied, state)
}

func Test_SetState_NoJobIDAndNoCandidate_FailsValidation(t *testing.T) {

	repos := newTestRepos(t)
	tracker := NewInterestTracker(repos.interests, repos.postings)

	_, err := tracker.SetState(context.Background(), 1, "", entities.InterestSaved, nil)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func Test_Remove_ThenGetState_ReturnsEmpty(t *testing.T) {

	repos := newTestRepos(t)
	tracker := NewInterestTracker(repos.interests, repos.postings)
	ctx := context.Background()
	posting := storedPosting(t, repos)

	_, err := tracker.SetState(ctx, 1, posting.ID, entities.InterestSaved, nil)
	require.NoError(t, err)
	require.NoError(t, tracker.Remove(ctx, 1, posting.ID))

	state, err := tracker.GetState(ctx, 1, posting.ID)
	assert.NoError(t, err)
	assert.Empty(t, state)
}
