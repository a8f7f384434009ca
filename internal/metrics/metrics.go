package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colegio_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	publicationViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "colegio_publication_views_total",
		Help: "Number of publication reads (each also inserts a visit row).",
	})

	emailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colegio_emails_sent_total",
		Help: "Number of notification emails grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colegio_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncPublicationView increments the publication read counter.
func IncPublicationView() {
	publicationViews.Inc()
}

// IncEmail increments the outgoing email counter.
func IncEmail(status string) {
	emailsSent.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
