package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ragidpk/Career-Playbook-sub002/internal/repositories"
)

type testRepos struct {
	postings     *repositories.Postings
	interests    *repositories.Interests
	companies    *repositories.Companies
	applications *repositories.Applications
	legacy       *repositories.LegacyRecords
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() {
		_ = dbCtx.Close()
	})

	return testRepos{
		postings:     repositories.NewPostingsRepository(dbCtx.DB),
		interests:    repositories.NewInterestsRepository(dbCtx.DB),
		companies:    repositories.NewCompaniesRepository(dbCtx.DB),
		applications: repositories.NewApplicationsRepository(dbCtx.DB),
		legacy:       repositories.NewLegacyRecordsRepository(dbCtx.DB),
	}
}
