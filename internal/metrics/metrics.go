package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncRuns counts repository syncs by result (success, failure).
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_sync_runs_total",
		Help: "Repository sync runs by result",
	}, []string{"result"})

	// SyncRepos counts per-repository outcomes (created, updated, error).
	SyncRepos = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_sync_repos_total",
		Help: "Repositories processed by sync, by outcome",
	}, []string{"outcome"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_sync_duration_seconds",
		Help:    "Repository sync duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	// ResumesGenerated counts generated documents by mode (ats, variant).
	ResumesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_resume_generated_total",
		Help: "Resume documents generated, by mode",
	}, []string{"mode"})

	PDFRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_pdf_render_total",
		Help: "PDF render attempts by result",
	}, []string{"result"})
)
