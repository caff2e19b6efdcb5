package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DbGroceryCreate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_grocery_create",
			Help: "Grocery item create",
		},
		[]string{"result"},
	)
	DbGroceryDelete = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_grocery_delete",
			Help: "Grocery item delete",
		},
		[]string{"result"},
	)
	DbUsedArchive = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_used_archive",
			Help: "Used item archive",
		},
		[]string{"result"},
	)
	DbDonationCreate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_donation_create",
			Help: "Donation record create",
		},
		[]string{"result"},
	)

	InventoryTransition = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_transition_total",
			Help: "Entries leaving the active inventory, by transition",
		},
		[]string{"transition", "result"},
	)
)

// Result labels a counter by whether err is nil.
func Result(err error) prometheus.Labels {
	if err != nil {
		return prometheus.Labels{"result": "error"}
	}
	return prometheus.Labels{"result": "success"}
}
