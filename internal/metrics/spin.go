package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spinTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_requests_total",
			Help: "Total spin settlements by outcome",
		},
		[]string{"outcome"},
	)

	spinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spin_settle_duration_ms",
			Help:    "Spin settlement duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"outcome"},
	)

	spinRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_rejected_total",
			Help: "Spin requests rejected before settlement, by reason",
		},
		[]string{"reason"},
	)

	betCoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bet_coins_total",
			Help: "Total coins staked across settled spins",
		},
	)

	winCoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "win_coins_total",
			Help: "Total coins credited across winning spins",
		},
	)
)

// RecordSpin records one settled spin.
func RecordSpin(isWin bool, bet, win int64, started time.Time) {
	outcome := "loss"
	if isWin {
		outcome = "win"
	}
	spinTotal.WithLabelValues(outcome).Inc()
	spinDuration.WithLabelValues(outcome).Observe(float64(time.Since(started).Milliseconds()))
	betCoinsTotal.Add(float64(bet))
	if isWin {
		winCoinsTotal.Add(float64(win))
	}
}

// RecordRejected records a spin rejected before any state change.
func RecordRejected(reason string) {
	spinRejectedTotal.WithLabelValues(reason).Inc()
}
