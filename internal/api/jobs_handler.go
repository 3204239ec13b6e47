package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ragidpk/Career-Playbook-sub002/internal/entities"
	"github.com/ragidpk/Career-Playbook-sub002/internal/services"
)

type JobsHandler struct {
	importer  *services.ManualImporter
	interests *services.InterestTracker
}

func NewJobsHandler(importer *services.ManualImporter, interests *services.InterestTracker) *JobsHandler {
	return &JobsHandler{importer: importer, interests: interests}
}

type importRequest struct {
	URL                string `json:"url" binding:"required"`
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	LocationType       string `json:"location_type"`
	DescriptionSnippet string `json:"description_snippet"`
	SalaryMin          *int   `json:"salary_min"`
	SalaryMax          *int   `json:"salary_max"`
	SalaryCurrency     string `json:"salary_currency"`
}

func (h *JobsHandler) Import(c *gin.Context) {

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	posting, err := h.importer.Import(c.Request.Context(), services.ImportRequest{
		URL:                req.URL,
		Title:              req.Title,
		CompanyName:        req.CompanyName,
		Location:           req.Location,
		LocationType:       req.LocationType,
		DescriptionSnippet: req.DescriptionSnippet,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		SalaryCurrency:     req.SalaryCurrency,
	})
	if err != nil {
		if errors.Is(err, entities.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, "failed to import job")
		return
	}

	c.JSON(http.StatusCreated, toPostingView(posting))
}

type setInterestRequest struct {
	State   string          `json:"state" binding:"required"`
	Posting *postingPayload `json:"posting"`
}

// SetInterest marks a posting for the current user. The posting may be
// referenced by id (path parameter) or carried inline when the client only
// holds a search result that is not guaranteed to be stored yet.
func (h *JobsHandler) SetInterest(c *gin.Context) {

	var req setInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	state, err := entities.ToInterestState(req.State)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var candidate *entities.JobPosting
	if req.Posting != nil {
		posting := req.Posting.toEntity()
		candidate = &posting
	}

	jobID, err := h.interests.SetState(c.Request.Context(), currentUserID(c), c.Param("id"), state, candidate)
	if err != nil {
		if errors.Is(err, entities.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, "failed to save interest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_id": jobID, "state": string(state)})
}

func (h *JobsHandler) RemoveInterest(c *gin.Context) {

	if err := h.interests.Remove(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		Internal(c, "failed to remove interest")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobsHandler) GetInterests(c *gin.Context) {

	idsParam := c.Query("ids")
	if idsParam == "" {
		BadRequest(c, "ids query parameter is required")
		return
	}

	states, err := h.interests.GetStatesBatch(c.Request.Context(), currentUserID(c), strings.Split(idsParam, ","))
	if err != nil {
		Internal(c, "failed to load interest states")
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}
