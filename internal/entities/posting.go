package entities

import (
	"errors"
	"time"
)

type LocationType string

const (
	OnSite LocationType = "on_site"
	Remote LocationType = "remote"
	Hybrid LocationType = "hybrid"
)

func ToLocationType(s string) (LocationType, error) {
	switch s {
	case string(OnSite):
		return OnSite, nil
	case string(Remote):
		return Remote, nil
	case string(Hybrid):
		return Hybrid, nil
	default:
		return "", errors.New("invalid location type")
	}
}

// JobPosting is the canonical record of a job advertisement, shared across
// users. A posting is immutable once stored: ingestion never updates
// descriptive fields of an already-known record.
type JobPosting struct {
	ID                 string  `gorm:"primaryKey"`
	Provider           string  `gorm:"index"`
	ProviderNativeID   *string
	CanonicalURL       *string
	Title              string
	CompanyName        string
	Location           string
	LocationType       LocationType
	SalaryMin          *int
	SalaryMax          *int
	SalaryCurrency     string
	DescriptionSnippet string
	ApplyURL           string
	PostedAt           *time.Time
	IngestedAt         time.Time
}
