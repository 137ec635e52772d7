package metrics

import (
	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/bnema/nlu-trainer/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nlu"

// Observer exports training queue activity as Prometheus metrics.
type Observer struct {
	transitions *prometheus.CounterVec
	sessions    *prometheus.GaugeVec
	progress    *prometheus.GaugeVec
}

var _ ports.TrainingObserver = (*Observer)(nil)

// NewObserver registers its collectors on registerer.
func NewObserver(registerer prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "transitions_total",
				Help:      "Training session status transitions, by target status.",
			},
			[]string{"status"},
		),
		sessions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "sessions",
				Help:      "Training sessions currently in each status.",
			},
			[]string{"status"},
		),
		progress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "progress_ratio",
				Help:      "Progress of the running training attempt, between 0 and 1.",
			},
			[]string{"bot", "language"},
		),
	}

	for _, collector := range []prometheus.Collector{o.transitions, o.sessions, o.progress} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Seed sets the per-status gauge from sessions that already exist, so counts
// survive a restart.
func (o *Observer) Seed(sessions []domain.TrainingSession) {
	o.sessions.Reset()
	for _, session := range sessions {
		o.sessions.WithLabelValues(string(session.Status)).Inc()
	}
}

func (o *Observer) TransitionObserved(id domain.TrainingID, from, to domain.TrainingStatus) {
	o.transitions.WithLabelValues(string(to)).Inc()
	if from != "" {
		o.sessions.WithLabelValues(string(from)).Dec()
	}
	o.sessions.WithLabelValues(string(to)).Inc()

	switch to {
	case domain.TrainingStatusTraining:
		o.progress.WithLabelValues(string(id.BotID), id.Language).Set(0)
	case domain.TrainingStatusDone:
		o.progress.WithLabelValues(string(id.BotID), id.Language).Set(1)
	default:
		o.progress.DeleteLabelValues(string(id.BotID), id.Language)
	}
}

func (o *Observer) ProgressObserved(id domain.TrainingID, progress float64) {
	o.progress.WithLabelValues(string(id.BotID), id.Language).Set(progress)
}
