package services

import (
	"context"
	"errors"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

func newTestTracker(t *testing.T, repos testRepos, legacy legacyRepository) *CrmTracker {
	t.Helper()

	if legacy == nil {
		legacy = repos.legacy
	}
	tracker, err := NewCrmTracker(EventBus.New(), repos.postings, repos.applications,
		legacy, NewCompanyResolver(repos.companies))
	require.NoError(t, err)
	return tracker
}

func storedPosting(t *testing.T, repos testRepos) *entities.JobPosting {
	t.Helper()

	posting, err := repos.postings.EnsureStored(context.Background(), entities.JobPosting{
		Provider:    "aggregate",
		Title:       "Backend Engineer",
		CompanyName: "Acme Corp",
		Location:    "Dubai, UAE",
		ApplyURL:    "https://jobs.example.com/123/apply",
	})
	require.NoError(t, err)
	return posting
}

func Test_TrackInCrm_CreatesApplicationCompanyAndMirror(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, nil)
	posting := storedPosting(t, repos)
	ctx := context.Background()

	result, err := tracker.TrackInCrm(ctx, 1, TrackRequest{Source: FromStore(posting.ID)})
	require.NoError(t, err)

	assert.True(t, result.NewCompany)
	assert.Equal(t, "Acme Corp", result.Company.Name)
	assert.Equal(t, entities.StatusWishlist, result.Application.Status)
	assert.Equal(t, entities.PriorityMedium, result.Application.Priority)
	assert.Equal(t, result.Company.ID, result.Application.CompanyID)
	require.NotNil(t, result.Application.JobID)
	assert.Equal(t, posting.ID, *result.Application.JobID)

	mirrored, err := repos.legacy.CountsByUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mirrored[1])
}

func Test_TrackInCrm_SameJobTwice_Conflicts(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, nil)
	posting := storedPosting(t, repos)
	ctx := context.Background()

	_, err := tracker.TrackInCrm(ctx, 1, TrackRequest{Source: FromStore(posting.ID)})
	require.NoError(t, err)

	_, err = tracker.TrackInCrm(ctx, 1, TrackRequest{Source: FromStore(posting.ID)})
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func Test_TrackInCrm_SecondJobAtSameCompany_ReusesCompany(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, nil)
	ctx := context.Background()

	first, err := tracker.TrackInCrm(ctx, 1, TrackRequest{
		Source: FromCandidate(entities.JobPosting{
			Provider: "aggregate", Title: "Backend Engineer", CompanyName: "Acme Corp",
		}),
	})
	require.NoError(t, err)
	require.True(t, first.NewCompany)

	second, err := tracker.TrackInCrm(ctx, 1, TrackRequest{
		Source: FromCandidate(entities.JobPosting{
			Provider: "aggregate", Title: "Platform Engineer", CompanyName: "ACME corp",
		}),
	})
	require.NoError(t, err)
	assert.False(t, second.NewCompany)
	assert.Equal(t, first.Company.ID, second.Company.ID)
}

func Test_TrackInCrm_UnknownJobID_NotFound(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, nil)

	_, err := tracker.TrackInCrm(context.Background(), 1, TrackRequest{Source: FromStore("missing")})
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func Test_TrackInCrm_InvalidStatus_FailsValidation(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, nil)
	posting := storedPosting(t, repos)

	_, err := tracker.TrackInCrm(context.Background(), 1, TrackRequest{
		Source: FromStore(posting.ID),
		Status: "daydreaming",
	})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func Test_TrackInCrm_MirrorFailure_DoesNotFailTracking(t *testing.T) {

	repos := newTestRepos(t)
	tracker := newTestTracker(t, repos, &failingLegacy{})
	posting := storedPosting(t, repos)
	ctx := context.Background()

	result, err := tracker.TrackInCrm(ctx, 1, TrackRequest{Source: FromStore(posting.ID)})
	require.NoError(t, err)
	assert.NotNil(t, result.Application)

	app, err := repos.applications.GetByJob(ctx, 1, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Application.ID, app.ID)
}

func Test_TrackInCrm_MirrorRecord_UsesLegacyPriorityScale(t *testing.T) {

	repos := newTestRepos(t)
	capturing := &capturingLegacy{}
	tracker := newTestTracker(t, repos, capturing)
	posting := storedPosting(t, repos)

	_, err := tracker.TrackInCrm(context.Background(), 1, TrackRequest{
		Source:   FromStore(posting.ID),
		Priority: entities.PriorityHigh,
	})
	require.NoError(t, err)

	require.NotNil(t, capturing.record)
	assert.Equal(t, 3, capturing.record.Priority)
	assert.Equal(t, "Acme Corp", capturing.record.CompanyName)
	assert.Equal(t, "Backend Engineer", capturing.record.JobTitle)
}

type failingLegacy struct{}

func (f *failingLegacy) Add(ctx context.Context, record *entities.LegacyCompanyRecord) error {
	return errors.New("legacy table is down")
}

type capturingLegacy struct {
	record *entities.LegacyCompanyRecord
}

func (c *capturingLegacy) Add(ctx context.Context, record *entities.LegacyCompanyRecord) error {
	c.record = record
	return nil
}
