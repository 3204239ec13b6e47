package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/events"
	"github.com/ragidpk/Career-Playbook-sub002/internal/logger"
	"github.com/ragidpk/Career-Playbook-sub002/internal/metrics"
)

type applicationRepository interface {
	ExistsForJob(ctx context.Context, userID int64, jobID string) (bool, error)
	Create(ctx context.Context, application *entities.PipelineApplication) error
}

type legacyRepository interface {
	Add(ctx context.Context, record *entities.LegacyCompanyRecord) error
}

type postingResolver interface {
	GetByID(ctx context.Context, id string) (*entities.JobPosting, error)
	EnsureStored(ctx context.Context, candidate entities.JobPosting) (*entities.JobPosting, error)
}

type companyResolverService interface {
	Resolve(ctx context.Context, userID int64, posting *entities.JobPosting) (*entities.Company, bool, error)
}

// PostingSource says where the posting to track comes from: an id already in
// the store, or a full candidate the caller holds from a live search result.
type PostingSource struct {
	jobID     string
	candidate *entities.JobPosting
}

func FromStore(jobID string) PostingSource {
	return PostingSource{jobID: jobID}
}

func FromCandidate(candidate entities.JobPosting) PostingSource {
	return PostingSource{jobID: candidate.ID, candidate: &candidate}
}

type TrackRequest struct {
	Source   PostingSource
	Status   entities.PipelineStatus // defaults to wishlist
	Priority entities.Priority       // defaults to medium
	Notes    string
}

type TrackResult struct {
	Application *entities.PipelineApplication
	Company     *entities.Company
	NewCompany  bool
}

type CrmTracker struct {
	bus          EventBus.Bus
	postings     postingResolver
	applications applicationRepository
	legacy       legacyRepository
	resolver     companyResolverService
}

func NewCrmTracker(bus EventBus.Bus, postings postingResolver, applications applicationRepository,
	legacy legacyRepository, resolver companyResolverService) (*CrmTracker, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if postings == nil {
		return nil, errors.New("postings store is nil")
	}
	if applications == nil {
		return nil, errors.New("applications repository is nil")
	}
	if legacy == nil {
		return nil, errors.New("legacy repository is nil")
	}
	if resolver == nil {
		return nil, errors.New("company resolver is nil")
	}

	return &CrmTracker{
		bus:          bus,
		postings:     postings,
		applications: applications,
		legacy:       legacy,
		resolver:     resolver,
	}, nil
}

// TrackInCrm promotes a posting into a company + application pair. The write
// sequence is not one transaction: steps up to the application insert fail
// fast, the legacy mirror write is best-effort and never fails the call. Each
// completed step is logged so partial completion is diagnosable afterwards.
func (t *CrmTracker) TrackInCrm(ctx context.Context, userID int64, req TrackRequest) (*TrackResult, error) {

	start := time.Now()
	defer func() {
		metrics.TrackingDuration.Observe(time.Since(start).Seconds())
	}()

	var steps []string

	status, priority, err := trackDefaults(req)
	if err != nil {
		return nil, err
	}

	if req.Source.jobID != "" {
		exists, err := t.applications.ExistsForJob(ctx, userID, req.Source.jobID)
		if err != nil {
			return nil, err
		}
		if exists {
			metrics.TrackingConflictsCounter.Inc()
			return nil, entities.ErrConflict
		}
	}
	steps = append(steps, "uniqueness_check")

	posting, err := t.resolvePosting(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	steps = append(steps, "posting_resolved")

	company, isNewCompany, err := t.resolver.Resolve(ctx, userID, posting)
	if err != nil {
		return nil, err
	}
	steps = append(steps, "company_resolved")

	application := entities.NewPipelineApplication(userID, company.ID, posting, status, priority, req.Notes)
	if err = t.applications.Create(ctx, &application); err != nil {
		if errors.Is(err, entities.ErrConflict) {
			// a concurrent identical call won the insert race
			metrics.TrackingConflictsCounter.Inc()
		}
		return nil, err
	}
	steps = append(steps, "application_created")
	metrics.TrackedApplicationsCounter.Inc()

	if err = t.writeMirror(ctx, userID, posting, priority); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeMirror).
			Errorf("mirror write failed for job %v, user %v: %v", posting.ID, userID, err)
		metrics.MirrorWriteFailures.Inc()
		t.bus.Publish(events.MirrorWriteFailedTopic, events.MirrorWriteFailed{
			UserID: userID,
			JobID:  posting.ID,
			Error:  err.Error(),
		})
	} else {
		steps = append(steps, "mirror_written")
	}

	t.bus.Publish(events.ApplicationTrackedTopic, events.ApplicationTracked{
		UserID:        userID,
		ApplicationID: application.ID,
		JobID:         posting.ID,
		CompanyID:     company.ID,
		NewCompany:    isNewCompany,
	})

	log.Infof("tracked job %v for user %v, steps completed: %v",
		posting.ID, userID, strings.Join(steps, ","))

	return &TrackResult{
		Application: &application,
		Company:     company,
		NewCompany:  isNewCompany,
	}, nil
}

func (t *CrmTracker) resolvePosting(ctx context.Context, source PostingSource) (*entities.JobPosting, error) {

	if source.candidate != nil {
		return t.postings.EnsureStored(ctx, *source.candidate)
	}

	if source.jobID == "" {
		return nil, fmt.Errorf("%w: job id is required", entities.ErrValidation)
	}

	posting, err := t.postings.GetByID(ctx, source.jobID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, fmt.Errorf("%w: job %v", entities.ErrNotFound, source.jobID)
		}
		return nil, err
	}
	return posting, nil
}

func (t *CrmTracker) writeMirror(ctx context.Context, userID int64, posting *entities.JobPosting, priority entities.Priority) error {
	return t.legacy.Add(ctx, &entities.LegacyCompanyRecord{
		UserID:      userID,
		CompanyName: posting.CompanyName,
		JobTitle:    posting.Title,
		Location:    posting.Location,
		ApplyURL:    posting.ApplyURL,
		Priority:    priority.LegacyScale(),
	})
}

func trackDefaults(req TrackRequest) (entities.PipelineStatus, entities.Priority, error) {

	status, priority := req.Status, req.Priority

	if status == "" {
		status = entities.StatusWishlist
	} else if _, err := entities.ToPipelineStatus(string(status)); err != nil {
		return "", "", fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}

	if priority == "" {
		priority = entities.PriorityMedium
	} else if _, err := entities.ToPriority(string(priority)); err != nil {
		return "", "", fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}

	return status, priority, nil
}
