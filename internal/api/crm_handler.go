package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/services"
)

type CrmHandler struct {
	tracker *services.CrmTracker
}

func NewCrmHandler(tracker *services.CrmTracker) *CrmHandler {
	return &CrmHandler{tracker: tracker}
}

type trackRequest struct {
	JobID    string          `json:"job_id"`
	Posting  *postingPayload `json:"posting"`
	Status   string          `json:"status"`
	Priority string          `json:"priority"`
	Notes    string          `json:"notes"`
}

type trackResponse struct {
	ApplicationID string    `json:"application_id"`
	JobID         *string   `json:"job_id"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	NewCompany    bool      `json:"new_company"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *CrmHandler) Track(c *gin.Context) {

	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	source := services.FromStore(req.JobID)
	if req.Posting != nil {
		source = services.FromCandidate(req.Posting.toEntity())
	}

	result, err := h.tracker.TrackInCrm(c.Request.Context(), currentUserID(c), services.TrackRequest{
		Source:   source,
		Status:   entities.PipelineStatus(req.Status),
		Priority: entities.Priority(req.Priority),
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrConflict):
			Conflict(c, "already tracked")
		case errors.Is(err, entities.ErrNotFound):
			NotFound(c, "job not found, please retry the search")
		case errors.Is(err, entities.ErrValidation):
			BadRequest(c, err.Error())
		default:
			Internal(c, "failed to track job")
		}
		return
	}

	c.JSON(http.StatusCreated, trackResponse{
		ApplicationID: result.Application.ID,
		JobID:         result.Application.JobID,
		Status:        string(result.Application.Status),
		Priority:      string(result.Application.Priority),
		CompanyID:     result.Company.ID,
		CompanyName:   result.Company.Name,
		NewCompany:    result.NewCompany,
		CreatedAt:     result.Application.CreatedAt,
	})
}
