package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/jobfeed"
	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type stubJobFeed struct {
	result *jobfeed.SearchResult
	params jobfeed.SearchParameters
}

func (s *stubJobFeed) Search(ctx context.Context, parameters jobfeed.SearchParameters) (*jobfeed.SearchResult, error) {
	s.params = parameters
	return s.result, nil
}

func Test_Search_StoresResultsAndAnnotatesInterest(t *testing.T) {

	repos := newTestRepos(t)
	feed := &stubJobFeed{result: &jobfeed.SearchResult{
		Postings: []jobfeed.Posting{
			{ID: "n-1", Title: "Backend Engineer", CompanyName: "Acme Corp", CanonicalURL: "https://jobs.example.com/1"},
			{ID: "n-2", Title: "Platform Engineer", CompanyName: "Globex", CanonicalURL: "https://jobs.example.com/2"},
		},
		TotalCount: 2,
		Provider:   "aggregate",
	}}
	searcher := NewPostingSearcher(feed, repos.postings, repos.interests)
	ctx := context.Background()

	result, err := searcher.Search(ctx, 1, SearchRequest{Keywords: "engineer"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.TotalCount)
	assert.Empty(t, result.Items[0].InterestState)

	require.NoError(t, repos.interests.Upsert(ctx, 1, result.Items[0].Posting.ID, entities.InterestSaved))

	again, err := searcher.Search(ctx, 1, SearchRequest{Keywords: "engineer"})
	require.NoError(t, err)
	require.Len(t, again.Items, 2)
	assert.Equal(t, entities.InterestSaved, again.Items[0].InterestState)
	assert.Empty(t, again.Items[1].InterestState)
}

func Test_Search_RepeatedQuery_KeepsPostingIDsStable(t *testing.T) {

	repos := newTestRepos(t)
	feed := &stubJobFeed{result: &jobfeed.SearchResult{
		Postings: []jobfeed.Posting{
			{ID: "n-1", Title: "Backend Engineer", CompanyName: "Acme Corp"},
		},
		TotalCount: 1,
		Provider:   "aggregate",
	}}
	searcher := NewPostingSearcher(feed, repos.postings, repos.interests)
	ctx := context.Background()

	first, err := searcher.Search(ctx, 1, SearchRequest{Keywords: "engineer"})
	require.NoError(t, err)

	second, err := searcher.Search(ctx, 1, SearchRequest{Keywords: "engineer"})
	require.NoError(t, err)
	assert.Equal(t, first.Items[0].Posting.ID, second.Items[0].Posting.ID)
}

func Test_Search_DefaultsPerPageAndMapsLocationType(t *testing.T) {

	repos := newTestRepos(t)
	feed := &stubJobFeed{result: &jobfeed.SearchResult{Provider: "aggregate"}}
	searcher := NewPostingSearcher(feed, repos.postings, repos.interests)

	_, err := searcher.Search(context.Background(), 1, SearchRequest{
		Keywords:     "engineer",
		LocationType: "remote",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, feed.params.PerPage)
	assert.Equal(t, jobfeed.Remote, feed.params.LocationType)
}
