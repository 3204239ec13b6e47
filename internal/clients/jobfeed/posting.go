package jobfeed

import (
	"encoding/json"
	"fmt"
	"time"
)

// Posting is a raw provider result. Nothing in it is trusted as deduplicated;
// every posting must pass through the job record store before anything
// references it by id.
type Posting struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	CompanyName        string     `json:"company_name"`
	Location           string     `json:"location"`
	LocationType       string     `json:"location_type"`
	SalaryMin          *int       `json:"salary_min"`
	SalaryMax          *int       `json:"salary_max"`
	SalaryCurrency     string     `json:"salary_currency"`
	DescriptionSnippet string     `json:"description_snippet"`
	ApplyURL           string     `json:"apply_url"`
	CanonicalURL       string     `json:"canonical_url"`
	PostedAt           CustomTime `json:"posted_at"`
}

type SearchResult struct {
	Postings   []Posting `json:"postings"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	Provider   string    `json:"provider"`
}

type CustomTime struct {
	time.Time
}

func (dt *CustomTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}

	if str == "" {
		dt.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return fmt.Errorf("parsing time %s: %v", str, err)
	}
	dt.Time = t
	return nil
}
