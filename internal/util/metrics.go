package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_requests_submitted_total",
		Help: "Total number of inventory requests submitted",
	})

	RequestsRejectedValidation = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_requests_validation_failures_total",
		Help: "Total number of submissions rejected before persistence",
	}, []string{"reason"})

	RequestsApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_requests_approved_total",
		Help: "Total number of requests approved",
	})

	RequestsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_requests_rejected_total",
		Help: "Total number of requests rejected",
	})

	InvoicesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invoices_generated_total",
		Help: "Total number of invoices generated and uploaded",
	})

	InvoiceStepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invoice_generation_step_failures_total",
		Help: "Total number of invoice generation failures by step",
	}, []string{"step"})

	InvoiceRenderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "invoice_render_latency_seconds",
		Help:    "Latency of PDF invoice rendering",
		Buckets: prometheus.DefBuckets,
	})

	NotificationEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_total",
		Help: "Total number of notification emails attempted",
	}, []string{"kind"})

	NotificationEmailFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_email_failures_total",
		Help: "Total number of notification emails that failed to send",
	}, []string{"kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
