package services

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

type companyRepository interface {
	GetByNormalizedName(ctx context.Context, userID int64, normalizedName string) (*entities.Company, error)
	Create(ctx context.Context, company *entities.Company) error
}

type CompanyResolver struct {
	companies companyRepository
}

func NewCompanyResolver(companies companyRepository) *CompanyResolver {
	return &CompanyResolver{companies: companies}
}

// FindByName returns the user's company matching the name after
// normalization, or nil when no match exists.
func (r *CompanyResolver) FindByName(ctx context.Context, userID int64, name string) (*entities.Company, error) {

	company, err := r.companies.GetByNormalizedName(ctx, userID, entities.NormalizeCompanyName(name))
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

func (r *CompanyResolver) CreateFromPosting(ctx context.Context, userID int64, posting *entities.JobPosting) (*entities.Company, error) {

	company := entities.NewCompany(userID, posting.CompanyName, posting.Location)
	if err := r.companies.Create(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Resolve finds the user's company for the posting's company name, creating
// it when absent. Two concurrent resolves for the same new name converge on
// one record: the loser of the insert race re-reads the winner.
func (r *CompanyResolver) Resolve(ctx context.Context, userID int64, posting *entities.JobPosting) (*entities.Company, bool, error) {

	if entities.NormalizeCompanyName(posting.CompanyName) == "" {
		return nil, false, fmt.Errorf("%w: posting has no company name", entities.ErrValidation)
	}

	company, err := r.FindByName(ctx, userID, posting.CompanyName)
	if err != nil {
		return nil, false, err
	}
	if company != nil {
		return company, false, nil
	}

	company, err = r.CreateFromPosting(ctx, userID, posting)
	if err == nil {
		return company, true, nil
	}

	if !errors.Is(err, entities.ErrConflict) {
		return nil, false, err
	}

	// lost the find-or-create race; the winner's record exists now
	company, err = r.FindByName(ctx, userID, posting.CompanyName)
	if err != nil {
		return nil, false, err
	}
	if company == nil {
		return nil, false, fmt.Errorf("%w: company not readable after duplicate-key insert", entities.ErrTransientStore)
	}
	return company, false, nil
}
