package report

import (
	"time"

	"ShopPulse/internal/domain/models"
)

// EligibleOrders selects revenue-eligible orders created at or after
// rangeStart. An order counts when it is not cancelled and is either paid or
// in a fulfilment state (completed, processing). Orders whose creation time
// failed to parse at ingress carry the zero time and are skipped without
// error. Input order is preserved.
func EligibleOrders(orders []models.Order, rangeStart time.Time) []models.Order {
	eligible := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !orderEligible(o) {
			continue
		}
		if o.CreatedAt.IsZero() || o.CreatedAt.Before(rangeStart) {
			continue
		}
		eligible = append(eligible, o)
	}
	return eligible
}

func orderEligible(o models.Order) bool {
	if o.Status == models.OrderStatusCancelled {
		return false
	}
	if o.PaymentStatus == models.PaymentStatusPaid {
		return true
	}
	return o.Status == models.OrderStatusCompleted || o.Status == models.OrderStatusProcessing
}
