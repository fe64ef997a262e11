package stats

import (
	"testing"
	"time"

	"github.com/snapshelf/orderdesk/internal/types"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAggregator() *Aggregator {
	return NewAggregator(func() time.Time { return testNow })
}

func TestSummarizeEmpty(t *testing.T) {

	summary := newTestAggregator().Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, "0.00", summary.TotalRevenue)
	assert.Equal(t, "0.00", summary.AvgOrderValue, "empty set must not divide by zero")
	assert.Equal(t, 0, summary.OverdueOrders)

	// histograms are zero-filled over the full catalogs
	assert.Len(t, summary.StatusCounts, len(types.Statuses()))
	assert.Len(t, summary.PriorityCounts, len(types.Priorities()))
	for _, count := range summary.StatusCounts {
		assert.Equal(t, 0, count)
	}
}

func TestSummarize(t *testing.T) {

	orders := []types.Order{
		{Status: types.StatusPending, Priority: types.PriorityHigh, Price: "100.50", DeliveryDate: testNow.AddDate(0, 0, 2)},
		{Status: types.StatusPending, Priority: types.PriorityLow, Price: "49.50", DeliveryDate: testNow.AddDate(0, 0, 1)},
		{Status: types.StatusInProgress, Priority: types.PriorityHigh, Price: "30.00", DeliveryDate: testNow.AddDate(0, 0, -1)},
		{Status: types.StatusCompleted, Priority: types.PriorityUrgent, Price: "20.00", DeliveryDate: testNow.AddDate(0, 0, -3)},
	}

	summary := newTestAggregator().Summarize(orders)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.StatusCounts[types.StatusPending])
	assert.Equal(t, 1, summary.StatusCounts[types.StatusInProgress])
	assert.Equal(t, 1, summary.StatusCounts[types.StatusCompleted])
	assert.Equal(t, 0, summary.StatusCounts[types.StatusCancelled])
	assert.Equal(t, 2, summary.PriorityCounts[types.PriorityHigh])
	assert.Equal(t, "200.00", summary.TotalRevenue)
	assert.Equal(t, "50.00", summary.AvgOrderValue)

	// only the late in-progress order counts: the completed one is terminal
	assert.Equal(t, 1, summary.OverdueOrders)

	statusSum := 0
	for _, count := range summary.StatusCounts {
		statusSum += count
	}
	assert.Equal(t, summary.Total, statusSum)

	prioritySum := 0
	for _, count := range summary.PriorityCounts {
		prioritySum += count
	}
	assert.Equal(t, summary.Total, prioritySum)
}

func TestSummarizeOverdueScenario(t *testing.T) {

	// created 10 days ago, due 2 days ago, still in progress
	order := types.Order{
		Status:       types.StatusInProgress,
		Priority:     types.PriorityNormal,
		Price:        "10.00",
		CreatedAt:    testNow.AddDate(0, 0, -10),
		DeliveryDate: testNow.AddDate(0, 0, -2),
	}

	summary := newTestAggregator().Summarize([]types.Order{order})

	assert.Equal(t, 1, summary.OverdueOrders)
}

func TestSummarizeTerminalNeverOverdue(t *testing.T) {

	pastDue := testNow.AddDate(0, 0, -5)

	for _, status := range []types.Status{types.StatusCompleted, types.StatusDelivered, types.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			summary := newTestAggregator().Summarize([]types.Order{
				{Status: status, Priority: types.PriorityNormal, Price: "1.00", DeliveryDate: pastDue},
			})
			assert.Equal(t, 0, summary.OverdueOrders)
		})
	}
}
