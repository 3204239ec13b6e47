package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ragidpk/Career-Playbook-sub002/internal/services"
)

func NewRouter(searcher *services.PostingSearcher, importer *services.ManualImporter,
	interests *services.InterestTracker, tracker *services.CrmTracker) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	searchHandler := NewSearchHandler(searcher)
	jobsHandler := NewJobsHandler(importer, interests)
	crmHandler := NewCrmHandler(tracker)

	v1 := router.Group("/v1")
	v1.Use(UserIDMiddleware())
	{
		v1.POST("/search", searchHandler.Search)

		jobs := v1.Group("/jobs")
		{
			jobs.POST("/import", jobsHandler.Import)
			jobs.GET("/interest", jobsHandler.GetInterests)
			jobs.POST("/interest", jobsHandler.SetInterest)
			jobs.PUT("/:id/interest", jobsHandler.SetInterest)
			jobs.DELETE("/:id/interest", jobsHandler.RemoveInterest)
		}

		v1.POST("/crm/track", crmHandler.Track)
	}

	return router
}
