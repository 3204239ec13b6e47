package jobfeed

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
)

var ErrTooDeepPagination = errors.New("too deep pagination")

type LocationType string

const (
	OnSite LocationType = "on_site"
	Remote LocationType = "remote"
	Hybrid LocationType = "hybrid"
)

func LocationTypeFrom(locationType entities.LocationType) (LocationType, error) {
	switch locationType {
	case entities.OnSite:
		return OnSite, nil
	case entities.Remote:
		return Remote, nil
	case entities.Hybrid:
		return Hybrid, nil
	default:
		return "", fmt.Errorf("invalid location type: %v", locationType)
	}
}

type SearchParameters struct {
	Keywords     string
	Location     string
	RadiusKm     int
	SalaryMin    int
	LocationType LocationType
	Page         int
	PerPage      int
}

func (s SearchParameters) Validate() error {

	if s.Keywords == "" {
		return fmt.Errorf("keywords must not be empty")
	}

	if s.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}

	if s.PerPage < 0 || s.PerPage > 100 {
		return fmt.Errorf("per page must be between 0 and 100")
	}

	maxResults := 1000
	if s.PerPage > 0 && s.Page >= maxResults/s.PerPage {
		return ErrTooDeepPagination
	}

	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{}
	params.Add("keywords", s.Keywords)

	if s.Location != "" {
		params.Add("location", s.Location)
	}

	if s.RadiusKm != 0 {
		params.Add("radius_km", strconv.Itoa(s.RadiusKm))
	}

	if s.SalaryMin != 0 {
		params.Add("salary_min", strconv.Itoa(s.SalaryMin))
	}

	if s.LocationType != "" {
		params.Add("location_type", string(s.LocationType))
	}

	params.Add("page", strconv.Itoa(s.Page))
	params.Add("per_page", strconv.Itoa(s.PerPage))

	return params
}
