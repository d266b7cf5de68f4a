package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CoreMetrics covers the settlement and review paths.
type CoreMetrics struct {
	PaymentsRegisteredTotal prometheus.CounterVec
	PaymentsAmountTotal     prometheus.CounterVec
	PaymentsRemovedTotal    prometheus.Counter
	PaymentErrorsTotal      prometheus.CounterVec

	ReviewsCreatedTotal prometheus.CounterVec
	ReviewsUpdatedTotal prometheus.CounterVec
	ReviewsDeletedTotal prometheus.CounterVec
	ReviewErrorsTotal   prometheus.CounterVec

	SettlementDuration prometheus.HistogramVec
}

func NewCoreMetrics() *CoreMetrics {
	return &CoreMetrics{
		PaymentsRegisteredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_registered_total",
				Help: "Total number of payments registered against orders",
			},
			[]string{"store_id"},
		),

		PaymentsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_amount_total",
				Help: "Total settled amount in the minor currency unit",
			},
			[]string{"store_id"},
		),

		PaymentsRemovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_removed_total",
				Help: "Total number of payments soft-removed",
			},
		),

		PaymentErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_errors_total",
				Help: "Total number of failed payment operations",
			},
			[]string{"error_type"},
		),

		ReviewsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviews_created_total",
				Help: "Total number of reviews created",
			},
			[]string{"store_id", "star"},
		),

		ReviewsUpdatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviews_updated_total",
				Help: "Total number of reviews updated",
			},
			[]string{"store_id"},
		),

		ReviewsDeletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviews_deleted_total",
				Help: "Total number of reviews soft-removed",
			},
			[]string{"store_id"},
		),

		ReviewErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "review_errors_total",
				Help: "Total number of failed review operations",
			},
			[]string{"error_type"},
		),

		SettlementDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_duration_seconds",
				Help:    "Time spent inside the payment registration transaction",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *CoreMetrics) RecordPaymentRegistered(storeID string, amount int64) {
	m.PaymentsRegisteredTotal.WithLabelValues(storeID).Inc()
	m.PaymentsAmountTotal.WithLabelValues(storeID).Add(float64(amount))
}

func (m *CoreMetrics) RecordPaymentRemoved() {
	m.PaymentsRemovedTotal.Inc()
}

func (m *CoreMetrics) RecordPaymentError(errorType string) {
	m.PaymentErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *CoreMetrics) RecordReviewCreated(storeID, star string) {
	m.ReviewsCreatedTotal.WithLabelValues(storeID, star).Inc()
}

func (m *CoreMetrics) RecordReviewUpdated(storeID string) {
	m.ReviewsUpdatedTotal.WithLabelValues(storeID).Inc()
}

func (m *CoreMetrics) RecordReviewDeleted(storeID string) {
	m.ReviewsDeletedTotal.WithLabelValues(storeID).Inc()
}

func (m *CoreMetrics) RecordReviewError(errorType string) {
	m.ReviewErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *CoreMetrics) RecordSettlementDuration(outcome string, seconds float64) {
	m.SettlementDuration.WithLabelValues(outcome).Observe(seconds)
}
