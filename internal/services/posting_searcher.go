package services

import (
	"context"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/jobfeed"
	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/logger"
)

type jobFeedClient interface {
	Search(ctx context.Context, parameters jobfeed.SearchParameters) (*jobfeed.SearchResult, error)
}

type SearchRequest struct {
	Keywords     string
	Location     string
	RadiusKm     int
	SalaryMin    int
	LocationType string
	Page         int
	PerPage      int
}

type SearchResultItem struct {
	Posting       entities.JobPosting
	InterestState entities.InterestState
}

type SearchResult struct {
	Items      []SearchResultItem
	TotalCount int
	Page       int
	Provider   string
}

type PostingSearcher struct {
	client    jobFeedClient
	postings  postingStore
	interests interestRepository
}

func NewPostingSearcher(client jobFeedClient, postings postingStore, interests interestRepository) *PostingSearcher {
	return &PostingSearcher{client: client, postings: postings, interests: interests}
}

// Search runs a provider query, funnels every returned candidate through the
// job record store, and annotates the stored records with the user's interest
// states. Candidates that fail to persist are skipped, not fatal.
func (s *PostingSearcher) Search(ctx context.Context, userID int64, req SearchRequest) (*SearchResult, error) {

	params := jobfeed.SearchParameters{
		Keywords:  req.Keywords,
		Location:  req.Location,
		RadiusKm:  req.RadiusKm,
		SalaryMin: req.SalaryMin,
		Page:      req.Page,
		PerPage:   req.PerPage,
	}
	if params.PerPage == 0 {
		params.PerPage = 20
	}

	if req.LocationType != "" {
		locationType, err := entities.ToLocationType(req.LocationType)
		if err == nil {
			params.LocationType, _ = jobfeed.LocationTypeFrom(locationType)
		}
	}

	feedResult, err := s.client.Search(ctx, params)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeJobFeedApi).
			Errorf("failed to search postings: %v", err)
		return nil, err
	}

	var items []SearchResultItem
	for _, raw := range feedResult.Postings {
		stored, err := s.postings.EnsureStored(ctx, candidateFromFeed(raw, feedResult.Provider))
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to store posting %v: %v", raw.ID, err)
			continue
		}
		items = append(items, SearchResultItem{Posting: *stored})
	}

	jobIDs := lo.Map(items, func(item SearchResultItem, _ int) string {
		return item.Posting.ID
	})

	states, err := s.interests.GetBatch(ctx, userID, jobIDs)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load interest states: %v", err)
	} else {
		for i := range items {
			items[i].InterestState = states[items[i].Posting.ID]
		}
	}

	return &SearchResult{
		Items:      items,
		TotalCount: feedResult.TotalCount,
		Page:       feedResult.Page,
		Provider:   feedResult.Provider,
	}, nil
}

func candidateFromFeed(raw jobfeed.Posting, provider string) entities.JobPosting {

	candidate := entities.JobPosting{
		Provider:           provider,
		Title:              raw.Title,
		CompanyName:        raw.CompanyName,
		Location:           raw.Location,
		SalaryMin:          raw.SalaryMin,
		SalaryMax:          raw.SalaryMax,
		SalaryCurrency:     raw.SalaryCurrency,
		DescriptionSnippet: raw.DescriptionSnippet,
		ApplyURL:           raw.ApplyURL,
	}

	if raw.ID != "" {
		nativeID := raw.ID
		candidate.ProviderNativeID = &nativeID
	}

	if raw.CanonicalURL != "" {
		canonicalURL := raw.CanonicalURL
		candidate.CanonicalURL = &canonicalURL
	}

	if locationType, err := entities.ToLocationType(raw.LocationType); err == nil {
		candidate.LocationType = locationType
	}

	if !raw.PostedAt.IsZero() {
		postedAt := raw.PostedAt.Time
		candidate.PostedAt = &postedAt
	}

	return candidate
}
