package api

import (
	"time"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

// postingPayload is a full posting a client holds on its side, usually a
// search result it got earlier. It lets interest marks and pipeline tracking
// work even when the record has not been ingested yet.
type postingPayload struct {
	ID                 string     `json:"id"`
	Provider           string     `json:"provider"`
	ProviderNativeID   *string    `json:"provider_native_id"`
	CanonicalURL       *string    `json:"canonical_url"`
	Title              string     `json:"title"`
	CompanyName        string     `json:"company_name"`
	Location           string     `json:"location"`
	LocationType       string     `json:"location_type"`
	SalaryMin          *int       `json:"salary_min"`
	SalaryMax          *int       `json:"salary_max"`
	SalaryCurrency     string     `json:"salary_currency"`
	DescriptionSnippet string     `json:"description_snippet"`
	ApplyURL           string     `json:"apply_url"`
	PostedAt           *time.Time `json:"posted_at"`
}

func (p *postingPayload) toEntity() entities.JobPosting {

	posting := entities.JobPosting{
		ID:                 p.ID,
		Provider:           p.Provider,
		ProviderNativeID:   p.ProviderNativeID,
		CanonicalURL:       p.CanonicalURL,
		Title:              p.Title,
		CompanyName:        p.CompanyName,
		Location:           p.Location,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
		SalaryCurrency:     p.SalaryCurrency,
		DescriptionSnippet: p.DescriptionSnippet,
		ApplyURL:           p.ApplyURL,
		PostedAt:           p.PostedAt,
	}
	if locationType, err := entities.ToLocationType(p.LocationType); err == nil {
		posting.LocationType = locationType
	}
	return posting
}

type postingView struct {
	ID                 string     `json:"id"`
	Provider           string     `json:"provider"`
	CanonicalURL       *string    `json:"canonical_url,omitempty"`
	Title              string     `json:"title"`
	CompanyName        string     `json:"company_name"`
	Location           string     `json:"location,omitempty"`
	LocationType       string     `json:"location_type,omitempty"`
	SalaryMin          *int       `json:"salary_min,omitempty"`
	SalaryMax          *int       `json:"salary_max,omitempty"`
	SalaryCurrency     string     `json:"salary_currency,omitempty"`
	DescriptionSnippet string     `json:"description_snippet,omitempty"`
	ApplyURL           string     `json:"apply_url,omitempty"`
	PostedAt           *time.Time `json:"posted_at,omitempty"`
}

func toPostingView(p *entities.JobPosting) postingView {
	return postingView{
		ID:                 p.ID,
		Provider:           p.Provider,
		CanonicalURL:       p.CanonicalURL,
		Title:              p.Title,
		CompanyName:        p.CompanyName,
		Location:           p.Location,
		LocationType:       string(p.LocationType),
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
		SalaryCurrency:     p.SalaryCurrency,
		DescriptionSnippet: p.DescriptionSnippet,
		ApplyURL:           p.ApplyURL,
		PostedAt:           p.PostedAt,
	}
}
