package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/ragidpk/Career-Playbook-sub002/internal/events"
	"github.com/ragidpk/Career-Playbook-sub002/internal/logger"
	"github.com/ragidpk/Career-Playbook-sub002/internal/metrics"
)

type trackedCounter interface {
	CountsByUser(ctx context.Context) (map[int64]int64, error)
}

// MirrorAuditor makes drift between pipeline applications and the legacy
// mirror observable. It never repairs: the mirror stays best-effort, the
// auditor only measures and reports.
type MirrorAuditor struct {
	applications trackedCounter
	legacy       trackedCounter
	cron         *cron.Cron
}

func NewMirrorAuditor(bus EventBus.Bus, applications, legacy trackedCounter) (*MirrorAuditor, error) {

	a := &MirrorAuditor{
		applications: applications,
		legacy:       legacy,
		cron:         cron.New(),
	}

	if err := bus.Subscribe(events.MirrorWriteFailedTopic, a.onMirrorWriteFailed); err != nil {
		return nil, err
	}

	_, err := a.cron.AddFunc("0 3 * * *", a.runAudit)
	if err != nil {
		return nil, err
	}

	a.cron.Start()
	log.Info("mirror auditor started")
	return a, nil
}

func (a *MirrorAuditor) Stop() {
	a.cron.Stop()
}

func (a *MirrorAuditor) onMirrorWriteFailed(event events.MirrorWriteFailed) {
	log.Warnf("mirror diverged for user %v, job %v: %v", event.UserID, event.JobID, event.Error)
}

func (a *MirrorAuditor) runAudit() {

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	divergence, err := a.Divergence(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("mirror audit failed: %v", err)
		return
	}

	metrics.MirrorDivergenceGauge.Set(float64(divergence))
	if divergence > 0 {
		log.Warnf("mirror audit found %v applications without a mirror record", divergence)
	} else {
		log.Info("mirror audit found no divergence")
	}
}

// Divergence counts applications that have no matching legacy record,
// summed over users. Extra legacy records are ignored: the mirror is allowed
// to hold entries the pipeline no longer explains.
func (a *MirrorAuditor) Divergence(ctx context.Context) (int64, error) {

	tracked, err := a.applications.CountsByUser(ctx)
	if err != nil {
		return 0, err
	}

	mirrored, err := a.legacy.CountsByUser(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for userID, count := range tracked {
		if gap := count - mirrored[userID]; gap > 0 {
			total += gap
		}
	}
	return total, nil
}
