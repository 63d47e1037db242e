package metrics

import "github.com/prometheus/client_golang/prometheus"

// DomainMetrics counts the business events the kitchen and front desk care about.
type DomainMetrics struct {
	ordersCreated       *prometheus.CounterVec
	orderTransitions    *prometheus.CounterVec
	reservationsCreated prometheus.Counter
	reservationsCancel  prometheus.Counter
}

// NewDomainMetrics registers the order and reservation counters on the provided registerer.
func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	if reg == nil {
		return &DomainMetrics{}
	}
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders placed through checkout.",
	}, []string{"status"})
	orderTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Order status transitions applied by staff.",
	}, []string{"from", "to"})
	reservationsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reservations_created_total",
		Help: "Table reservations booked.",
	})
	reservationsCancel := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reservations_cancelled_total",
		Help: "Table reservations cancelled.",
	})
	reg.MustRegister(ordersCreated, orderTransitions, reservationsCreated, reservationsCancel)
	return &DomainMetrics{
		ordersCreated:       ordersCreated,
		orderTransitions:    orderTransitions,
		reservationsCreated: reservationsCreated,
		reservationsCancel:  reservationsCancel,
	}
}

// IncOrderCreated counts a newly placed order by its initial status.
func (d *DomainMetrics) IncOrderCreated(status string) {
	if d == nil || d.ordersCreated == nil {
		return
	}
	d.ordersCreated.WithLabelValues(status).Inc()
}

// IncOrderTransition counts an applied order status transition.
func (d *DomainMetrics) IncOrderTransition(from, to string) {
	if d == nil || d.orderTransitions == nil {
		return
	}
	d.orderTransitions.WithLabelValues(from, to).Inc()
}

// IncReservationCreated counts a booked reservation.
func (d *DomainMetrics) IncReservationCreated() {
	if d == nil || d.reservationsCreated == nil {
		return
	}
	d.reservationsCreated.Inc()
}

// IncReservationCancelled counts a cancelled reservation.
func (d *DomainMetrics) IncReservationCancelled() {
	if d == nil || d.reservationsCancel == nil {
		return
	}
	d.reservationsCancel.Inc()
}
