package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/jobfeed"
	"github.com/ragidpk/Career-Playbook-sub002/internal/services"
)

type SearchHandler struct {
	searcher *services.PostingSearcher
}

func NewSearchHandler(searcher *services.PostingSearcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

type searchRequest struct {
	Keywords     string `json:"keywords" binding:"required"`
	Location     string `json:"location"`
	RadiusKm     int    `json:"radius_km"`
	SalaryMin    int    `json:"salary_min"`
	LocationType string `json:"location_type"`
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
}

type searchResultItem struct {
	Posting       postingView `json:"posting"`
	InterestState string      `json:"interest_state,omitempty"`
}

type searchResponse struct {
	Items      []searchResultItem `json:"items"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	Provider   string             `json:"provider"`
}

func (h *SearchHandler) Search(c *gin.Context) {

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.searcher.Search(c.Request.Context(), currentUserID(c), services.SearchRequest{
		Keywords:     req.Keywords,
		Location:     req.Location,
		RadiusKm:     req.RadiusKm,
		SalaryMin:    req.SalaryMin,
		LocationType: req.LocationType,
		Page:         req.Page,
		PerPage:      req.PerPage,
	})
	if err != nil {
		if errors.Is(err, jobfeed.ErrTooDeepPagination) {
			BadRequest(c, err.Error())
			return
		}
		Error(c, http.StatusBadGateway, "job search is temporarily unavailable")
		return
	}

	items := lo.Map(result.Items, func(item services.SearchResultItem, _ int) searchResultItem {
		return searchResultItem{
			Posting:       toPostingView(&item.Posting),
			InterestState: string(item.InterestState),
		}
	})

	c.JSON(http.StatusOK, searchResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Provider:   result.Provider,
	})
}
