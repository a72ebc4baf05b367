package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type metrics struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	resultSize  *prometheus.HistogramVec
	chatReplies *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "society",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "society",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		resultSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "society",
			Name:      "filter_result_size",
			Help:      "Number of records returned by a filtered listing",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"kind"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "society",
			Name:      "chat_replies_total",
			Help:      "Assistant replies by whether the prompt was recognised",
		}, []string{"known"}),
	}
	reg.MustRegister(m.requests, m.latency, m.resultSize, m.chatReplies)
	return m
}

// observe logs and counts every request, mirroring the access log format
// "time | status | latency | method path".
func observe(log *zap.Logger, m *metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(route).Observe(latency.Seconds())

		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request failed", append(fields, zap.Error(err))...)
		} else {
			log.Info("request", fields...)
		}
		return err
	}
}
