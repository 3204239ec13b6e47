package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

func Test_Interests_RepeatedUpserts_ConvergeToSingleItem(t *testing.T) {

	db := newTestDb(t)
	repo := NewInterestsRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, 1, "j1", entities.InterestSaved))
	assert.NoError(t, repo.Upsert(ctx, 1, "j1", entities.InterestHidden))
	assert.NoError(t, repo.Upsert(ctx, 1, "j1", entities.InterestSaved))

	state, err := repo.Get(ctx, 1, "j1")
	assert.NoError(t, err)
	assert.Equal(t, entities.InterestSaved, state)

	var count int64
	assert.NoError(t, db.Model(&entities.InterestItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_Interests_Get_WhenAbsent_ReturnsEmptyState(t *testing.T) {

	repo := NewInterestsRepository(newTestDb(t))

	state, err := repo.Get(context.Background(), 1, "missing")
	assert.NoError(t, err)
	assert.Empty(t, state)
}

func Test_Interests_Remove_ThenGet_ReturnsEmptyState(t *testing.T) {

	repo := NewInterestsRepository(newTestDb(t))
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, 1, "j1", entities.InterestApplied))
	assert.NoError(t, repo.Remove(ctx, 1, "j1"))

	state, err := repo.Get(ctx, 1, "j1")
	assert.NoError(t, err)
	assert.Empty(t, state)

	// removing again is a no-op
	assert.NoError(t, repo.Remove(ctx, 1, "j1"))
}

func Test_Interests_GetBatch_ReturnsOnlyMarkedJobs(t *testing.T) {

	repo := NewInterestsRepository(newTestDb(t))
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, 1, "j1", entities.InterestSaved))
	assert.NoError(t, repo.Upsert(ctx, 1, "j2", entities.InterestHidden))
	assert.NoError(t, repo.Upsert(ctx, 2, "j3", entities.InterestSaved))

	states, err := repo.GetBatch(ctx, 1, []string{"j1", "j2", "j3", "j4"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]entities.InterestState{
		"j1": entities.InterestSaved,
		"j2": entities.InterestHidden,
	}, states)
}
