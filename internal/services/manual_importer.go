package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/pagemeta"
	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/logger"
)

const manualProvider = "manual"

type pageMetaClient interface {
	Extract(ctx context.Context, pageURL string) (*pagemeta.PageMeta, error)
}

type ImportRequest struct {
	URL                string `validate:"required,url"`
	Title              string `validate:"required"`
	CompanyName        string `validate:"required"`
	Location           string
	LocationType       string
	DescriptionSnippet string
	SalaryMin          *int
	SalaryMax          *int
	SalaryCurrency     string
}

type ManualImporter struct {
	postings postingStore
	pageMeta pageMetaClient
	validate *validator.Validate
}

func NewManualImporter(postings postingStore, pageMeta pageMetaClient) *ManualImporter {
	return &ManualImporter{
		postings: postings,
		pageMeta: pageMeta,
		validate: validator.New(),
	}
}

// Import ingests a posting from a URL the user pasted in. Missing descriptive
// fields are filled from the page-metadata extractor when available; the
// request must end up with a url, title and company name to be accepted.
func (m *ManualImporter) Import(ctx context.Context, req ImportRequest) (*entities.JobPosting, error) {

	if req.Title == "" || req.CompanyName == "" {
		m.fillFromPageMeta(ctx, &req)
	}

	if err := m.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}

	candidate := entities.JobPosting{
		Provider:           manualProvider,
		CanonicalURL:       &req.URL,
		Title:              req.Title,
		CompanyName:        req.CompanyName,
		Location:           req.Location,
		DescriptionSnippet: req.DescriptionSnippet,
		ApplyURL:           req.URL,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		SalaryCurrency:     req.SalaryCurrency,
	}

	if locationType, err := entities.ToLocationType(req.LocationType); err == nil {
		candidate.LocationType = locationType
	}

	return m.postings.EnsureStored(ctx, candidate)
}

func (m *ManualImporter) fillFromPageMeta(ctx context.Context, req *ImportRequest) {

	if m.pageMeta == nil {
		return
	}

	meta, err := m.pageMeta.Extract(ctx, req.URL)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypePageMetaApi).
			Errorf("failed to extract page metadata for %v: %v", req.URL, err)
		return
	}

	if req.Title == "" {
		req.Title = meta.Title
	}
	if req.CompanyName == "" {
		req.CompanyName = meta.CompanyName
	}
	if req.Location == "" {
		req.Location = meta.Location
	}
	if req.LocationType == "" {
		req.LocationType = meta.LocationType
	}
	if req.DescriptionSnippet == "" {
		req.DescriptionSnippet = meta.DescriptionSnippet
	}
}
