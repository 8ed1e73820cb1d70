package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

type Metrics struct {
	registry          *prometheus.Registry
	httpRequests      *prometheus.CounterVec
	transactionStates *prometheus.CounterVec
	metadataLookups   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rude",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		transactionStates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rude",
			Name:      "transaction_state_total",
			Help:      "Transaction log entries entering a state, by service.",
		}, []string{"service", "state"}),
		metadataLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rude",
			Name:      "metadata_lookups_total",
			Help:      "NFT metadata lookups by source (cache, db, chain, miss).",
		}, []string{"source"}),
	}
	reg.MustRegister(
		m.httpRequests,
		m.transactionStates,
		m.metadataLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) TransactionState(service, state string) {
	if m == nil {
		return
	}
	m.transactionStates.WithLabelValues(service, state).Inc()
}

func (m *Metrics) MetadataLookup(source string) {
	if m == nil {
		return
	}
	m.metadataLookups.WithLabelValues(source).Inc()
}

// Middleware counts every request once the handler chain has run.
func (m *Metrics) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.httpRequests.WithLabelValues(ctx.Method(), ctx.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return func(ctx *fiber.Ctx) error {
		h(ctx.Context())
		return nil
	}
}
