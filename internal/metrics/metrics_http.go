package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	RecipeGenerate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_generate",
			Help: "Recipe generation calls to the text model",
		},
		[]string{"result"},
	)
	NotificationSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_notification_sent",
			Help: "Donation receipts and mails sent",
		},
		[]string{"channel", "result"},
	)
)
