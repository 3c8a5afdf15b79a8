package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hoteldesk", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Reservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "reservations_total", Help: "Reservation attempts."},
		[]string{"outcome"}, // outcome: confirmed|rejected
	)
	PriceChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "price_changed_rooms_total", Help: "Rooms touched by price changes."},
		[]string{"kind"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	RateLimitDrops = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "rate_limit_drops_total", Help: "Requests dropped by the reserve rate limiter."},
	)
)

// Serve starts a side metrics server when METRICS_ADDR is set.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Reservations, PriceChanges, CacheEvents, RateLimitDrops)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveReservation(outcome string) { // outcome: confirmed|rejected
	Reservations.WithLabelValues(outcome).Inc()
}

func ObservePriceChange(kind string, rooms int) {
	PriceChanges.WithLabelValues(kind).Add(float64(rooms))
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveRateLimitDrop() {
	RateLimitDrops.Inc()
}
