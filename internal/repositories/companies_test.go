package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

func Test_Companies_GetByNormalizedName_MatchesCaseInsensitively(t *testing.T) {

	repo := NewCompaniesRepository(newTestDb(t))
	ctx := context.Background()

	company := entities.NewCompany(1, "  Acme Corp ", "Dubai, UAE")
	assert.NoError(t, repo.Create(ctx, &company))

	found, err := repo.GetByNormalizedName(ctx, 1, entities.NormalizeCompanyName("ACME CORP"))
	assert.NoError(t, err)
	assert.Equal(t, company.ID, found.ID)
	assert.Equal(t, "Acme Corp", found.Name)
}

func Test_Companies_Create_DuplicateNormalizedName_ReturnsConflict(t *testing.T) {

	repo := NewCompaniesRepository(newTestDb(t))
	ctx := context.Background()

	first := entities.NewCompany(1, "Acme Corp", "")
	assert.NoError(t, repo.Create(ctx, &first))

	second := entities.NewCompany(1, "acme corp", "")
	assert.ErrorIs(t, repo.Create(ctx, &second), entities.ErrConflict)
}

func Test_Companies_SameNameDifferentUsers_BothStored(t *testing.T) {

	repo := NewCompaniesRepository(newTestDb(t))
	ctx := context.Background()

	first := entities.NewCompany(1, "Acme Corp", "")
	second := entities.NewCompany(2, "Acme Corp", "")

	assert.NoError(t, repo.Create(ctx, &first))
	assert.NoError(t, repo.Create(ctx, &second))
}

func Test_Companies_ArchivedCompany_IsInvisibleToLookup(t *testing.T) {

	repo := NewCompaniesRepository(newTestDb(t))
	ctx := context.Background()

	company := entities.NewCompany(1, "Acme Corp", "")
	company.IsArchived = true
	assert.NoError(t, repo.Create(ctx, &company))

	_, err := repo.GetByNormalizedName(ctx, 1, entities.NormalizeCompanyName("Acme Corp"))
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
