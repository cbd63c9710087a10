package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeRewarded = "rewarded"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bsmart_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bsmart_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	rewardsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bsmart_rewards_total",
		Help: "Reward decisions by transaction type and outcome",
	}, []string{"type", "outcome"})

	coinsCredited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bsmart_coins_credited_total",
		Help: "Coins credited to actors by transaction type",
	}, []string{"type"})
)

// ObserveReward records one settled (or skipped) reward.
func ObserveReward(kind, outcome string, coins int64) {
	rewardsTotal.WithLabelValues(kind, outcome).Inc()
	if outcome == OutcomeRewarded && coins > 0 {
		coinsCredited.WithLabelValues(kind).Add(float64(coins))
	}
}

// Middleware labels requests by chi route pattern so path params don't blow up cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
