package contacts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var bookOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "contacts_book_operations_total",
	Help: "Number of contact book operations, by operation and result",
}, []string{"op", "result"})

var bookContacts = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "contacts_book_contacts",
	Help: "Number of contacts in the most recently modified book",
})
