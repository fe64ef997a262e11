package stats

import (
	"fmt"
	"time"

	"github.com/snapshelf/orderdesk/internal/types"
)

// Aggregator computes dashboard summary numbers over an order set. The clock
// is injectable so the overdue cutoff is testable.
type Aggregator struct {
	now func() time.Time
}

func NewAggregator(now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{now: now}
}

// Summarize builds the summary for the given orders, typically the output of
// a filtered query. Histograms are zero-filled over the full catalogs so the
// UI never sees a missing key.
func (a *Aggregator) Summarize(orders []types.Order) types.Statistics {
	statusCounts := make(map[types.Status]int, len(types.Statuses()))
	for _, s := range types.Statuses() {
		statusCounts[s] = 0
	}
	priorityCounts := make(map[types.Priority]int, len(types.Priorities()))
	for _, p := range types.Priorities() {
		priorityCounts[p] = 0
	}

	now := a.now()
	var revenue float64
	overdue := 0

	for _, o := range orders {
		statusCounts[o.Status]++
		priorityCounts[o.Priority]++
		revenue += o.PriceValue()
		if o.DeliveryDate.Before(now) && !o.Status.IsTerminal() {
			overdue++
		}
	}

	avg := 0.0
	if len(orders) > 0 {
		avg = revenue / float64(len(orders))
	}

	return types.Statistics{
		Total:          len(orders),
		StatusCounts:   statusCounts,
		PriorityCounts: priorityCounts,
		TotalRevenue:   fmt.Sprintf("%.2f", revenue),
		AvgOrderValue:  fmt.Sprintf("%.2f", avg),
		OverdueOrders:  overdue,
	}
}
