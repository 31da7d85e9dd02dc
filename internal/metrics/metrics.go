package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every Prometheus collector the service exports. All
// methods are safe to call on a nil *Registry so tests and tools can skip
// metrics entirely.
type Registry struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Domain
	ApplicationsCreated      prometheus.Counter
	ApplicationStatusChanges *prometheus.CounterVec
	ReactionsToggled         *prometheus.CounterVec
	CommentsPosted           *prometheus.CounterVec
	VerificationsCompleted   prometheus.Counter
	ChallengesPurged         prometheus.Counter

	// Cache
	CacheRequests *prometheus.CounterVec
}

// NewRegistry registers all collectors on reg
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "communityhub_http_requests_total",
				Help: "HTTP requests processed by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "communityhub_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "communityhub_http_requests_in_flight",
				Help: "HTTP requests currently being served",
			},
		),
		ApplicationsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "communityhub_applications_created_total",
				Help: "Applications submitted to positions",
			},
		),
		ApplicationStatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "communityhub_application_status_changes_total",
				Help: "Application status transitions by target status",
			},
			[]string{"status"},
		),
		ReactionsToggled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "communityhub_reactions_toggled_total",
				Help: "Like/dislike toggles by kind and resulting action",
			},
			[]string{"kind", "action"},
		),
		CommentsPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "communityhub_comments_posted_total",
				Help: "Comments posted by kind (comment or reply)",
			},
			[]string{"kind"},
		),
		VerificationsCompleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "communityhub_verifications_completed_total",
				Help: "Users that completed verification",
			},
		),
		ChallengesPurged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "communityhub_verification_challenges_purged_total",
				Help: "Expired verification challenges deleted by the purge job",
			},
		),
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "communityhub_cache_requests_total",
				Help: "In-process cache lookups by cache name and result",
			},
			[]string{"cache", "result"},
		),
	}
}

func (r *Registry) ObserveHTTP(route, method, status string, seconds float64) {
	if r == nil {
		return
	}
	r.HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (r *Registry) InFlight(delta float64) {
	if r == nil {
		return
	}
	r.HTTPRequestsInFlight.Add(delta)
}

func (r *Registry) ApplicationCreated() {
	if r == nil {
		return
	}
	r.ApplicationsCreated.Inc()
}

func (r *Registry) ApplicationStatusChanged(status string) {
	if r == nil {
		return
	}
	r.ApplicationStatusChanges.WithLabelValues(status).Inc()
}

// ReactionToggled records a toggle; action is "added" or "removed"
func (r *Registry) ReactionToggled(kind, action string) {
	if r == nil {
		return
	}
	r.ReactionsToggled.WithLabelValues(kind, action).Inc()
}

// CommentPosted records a post; kind is "comment" or "reply"
func (r *Registry) CommentPosted(kind string) {
	if r == nil {
		return
	}
	r.CommentsPosted.WithLabelValues(kind).Inc()
}

func (r *Registry) VerificationCompleted() {
	if r == nil {
		return
	}
	r.VerificationsCompleted.Inc()
}

func (r *Registry) ChallengesPurgedAdd(n int64) {
	if r == nil || n <= 0 {
		return
	}
	r.ChallengesPurged.Add(float64(n))
}

func (r *Registry) CacheLookup(cache string, hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.CacheRequests.WithLabelValues(cache, result).Inc()
}
