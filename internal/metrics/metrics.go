package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playbook_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	IngestedPostingsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playbook_postings_ingested_total",
			Help: "Total number of postings passed through ingestion, by outcome.",
		},
		[]string{"outcome"}, // inserted, id_hit, url_hit, race_absorbed
	)
	TrackedApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "playbook_applications_tracked_total",
			Help: "Total number of applications created by the CRM tracker.",
		},
	)
	TrackingConflictsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "playbook_tracking_conflicts_total",
			Help: "Total number of duplicate tracking attempts rejected.",
		},
	)
	MirrorWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "playbook_mirror_write_failures_total",
			Help: "Total number of legacy mirror writes that failed after a successful track.",
		},
	)
	MirrorDivergenceGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "playbook_mirror_divergence_records",
			Help: "Applications without a matching legacy mirror record, as of the last audit.",
		},
	)
	TrackingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playbook_crm_track_duration_seconds",
			Help:    "Duration of each trackInCrm call in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(IngestedPostingsCounter)
	prometheus.MustRegister(TrackedApplicationsCounter)
	prometheus.MustRegister(TrackingConflictsCounter)
	prometheus.MustRegister(MirrorWriteFailures)
	prometheus.MustRegister(MirrorDivergenceGauge)
	prometheus.MustRegister(TrackingDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), nil))
	}()
}
