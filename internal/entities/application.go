package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PipelineStatus is the stage of a tracked application. The ladder is linear:
//
//	wishlist → applied → screening → phone_interview → technical_interview →
//	onsite_interview → final_round → offer_received → negotiating →
//	{accepted | rejected | withdrawn}
//
// This subsystem only ever creates applications in their initial stage;
// transitions are handled elsewhere.
type PipelineStatus string

const (
	StatusWishlist           PipelineStatus = "wishlist"
	StatusApplied            PipelineStatus = "applied"
	StatusScreening          PipelineStatus = "screening"
	StatusPhoneInterview     PipelineStatus = "phone_interview"
	StatusTechnicalInterview PipelineStatus = "technical_interview"
	StatusOnsiteInterview    PipelineStatus = "onsite_interview"
	StatusFinalRound         PipelineStatus = "final_round"
	StatusOfferReceived      PipelineStatus = "offer_received"
	StatusNegotiating        PipelineStatus = "negotiating"
	StatusAccepted           PipelineStatus = "accepted"
	StatusRejected           PipelineStatus = "rejected"
	StatusWithdrawn          PipelineStatus = "withdrawn"
)

var pipelineStatuses = []PipelineStatus{
	StatusWishlist, StatusApplied, StatusScreening, StatusPhoneInterview,
	StatusTechnicalInterview, StatusOnsiteInterview, StatusFinalRound,
	StatusOfferReceived, StatusNegotiating, StatusAccepted, StatusRejected,
	StatusWithdrawn,
}

func ToPipelineStatus(s string) (PipelineStatus, error) {
	for _, status := range pipelineStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid pipeline status: %v", s)
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func ToPriority(s string) (Priority, error) {
	switch s {
	case string(PriorityHigh):
		return PriorityHigh, nil
	case string(PriorityMedium):
		return PriorityMedium, nil
	case string(PriorityLow):
		return PriorityLow, nil
	default:
		return "", errors.New("invalid priority")
	}
}

// LegacyScale encodes a priority on the numeric scale the legacy company
// table uses: high=3, medium=2, low=1.
func (p Priority) LegacyScale() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// PipelineApplication links a user, a company and (usually) a posting.
// At most one application exists per (user, non-null job), enforced by a
// unique index.
type PipelineApplication struct {
	ID                 string  `gorm:"primaryKey"`
	UserID             int64   `gorm:"index"`
	CompanyID          string
	JobID              *string
	Status             PipelineStatus
	Priority           Priority
	Notes              string
	SalaryMin          *int
	SalaryMax          *int
	SalaryCurrency     string
	LocationType       LocationType
	ApplyURL           string
	DescriptionSnippet string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewPipelineApplication(userID int64, companyID string, posting *JobPosting,
	status PipelineStatus, priority Priority, notes string) PipelineApplication {

	app := PipelineApplication{
		ID:        uuid.NewString(),
		UserID:    userID,
		CompanyID: companyID,
		Status:    status,
		Priority:  priority,
		Notes:     notes,
	}
	if posting != nil {
		jobID := posting.ID
		app.JobID = &jobID
		app.SalaryMin = posting.SalaryMin
		app.SalaryMax = posting.SalaryMax
		app.SalaryCurrency = posting.SalaryCurrency
		app.LocationType = posting.LocationType
		app.ApplyURL = posting.ApplyURL
		app.DescriptionSnippet = posting.DescriptionSnippet
	}
	return app
}
