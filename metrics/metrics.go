package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConfigChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_config_changes_total",
			Help: "Configuration updates applied by editing sessions",
		},
		[]string{"op"},
	)

	InvitationSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_saves_total",
			Help: "Invitation configurations written to storage by editing sessions",
		},
		[]string{"result"},
	)

	Renders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_renders_total",
			Help: "Template surfaces rendered",
		},
		[]string{"template", "mode"},
	)

	TemplateFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_template_fallbacks_total",
			Help: "Renders of an unknown template id that fell back to the default variant",
		},
		[]string{"mode"},
	)

	EditorSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "invitation_editor_sessions_active",
			Help: "Open invitation editing sessions",
		},
	)

	SocialCards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_social_cards_total",
			Help: "Social preview cards served",
		},
		[]string{"format", "source"},
	)

	SocialCardDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_social_card_degraded_total",
			Help: "Social preview lookups that fell back to placeholder data",
		},
		[]string{"reason"},
	)

	SocialCardDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invitation_social_card_render_seconds",
			Help:    "Time spent rendering a social preview card",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)
)
