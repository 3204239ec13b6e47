package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/ragidpk/Career-Playbook-sub002/internal/api"
	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/jobfeed"
	"github.com/ragidpk/Career-Playbook-sub002/internal/clients/pagemeta"
	"github.com/ragidpk/Career-Playbook-sub002/internal/config"
	"github.com/ragidpk/Career-Playbook-sub002/internal/logger"
	"github.com/ragidpk/Career-Playbook-sub002/internal/metrics"
	"github.com/ragidpk/Career-Playbook-sub002/internal/repositories"
	"github.com/ragidpk/Career-Playbook-sub002/internal/services"
)

func buildServices(cfg *config.Config, dbContext *repositories.DbContext, bus EventBus.Bus) (
	*services.PostingSearcher, *services.ManualImporter, *services.InterestTracker, *services.CrmTracker) {

	feedClient := jobfeed.NewClient(cfg.JobFeed.BaseURL, cfg.JobFeed.APIKey)
	feedClient.SetRateLimit(cfg.JobFeed.MaxRequestsPerSecond)

	pageMetaClient := pagemeta.NewClient(cfg.PageMeta.BaseURL)

	postings := repositories.NewCachedPostings(repositories.NewPostingsRepository(dbContext.DB))
	interests := repositories.NewInterestsRepository(dbContext.DB)
	companies := repositories.NewCompaniesRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	legacy := repositories.NewLegacyRecordsRepository(dbContext.DB)

	searcher := services.NewPostingSearcher(feedClient, postings, interests)
	importer := services.NewManualImporter(postings, pageMetaClient)
	interestTracker := services.NewInterestTracker(interests, postings)

	crmTracker, err := services.NewCrmTracker(bus, postings, applications, legacy,
		services.NewCompanyResolver(companies))
	if err != nil {
		log.Fatalf("can't create crm tracker: %v", err)
	}

	return searcher, importer, interestTracker, crmTracker
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	bus := EventBus.New()

	searcher, importer, interestTracker, crmTracker := buildServices(cfg, dbContext, bus)

	auditor, err := services.NewMirrorAuditor(bus,
		repositories.NewApplicationsRepository(dbContext.DB),
		repositories.NewLegacyRecordsRepository(dbContext.DB))
	if err != nil {
		log.Fatalf("can't create mirror auditor: %v", err)
	}
	defer auditor.Stop()

	router := api.NewRouter(searcher, importer, interestTracker, crmTracker)
	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("listening on %v", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
