package store

import (
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/snapshelf/orderdesk/internal/types"
	"github.com/stretchr/testify/assert"
)

var priceFormat = regexp.MustCompile(`^\d+\.\d{2}$`)

func TestGenerate(t *testing.T) {

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		t.Run(fmt.Sprintf("order %d", i), func(t *testing.T) {
			order := generate(rng, i+1, now)

			assert.Equal(t, fmt.Sprintf("ORD-%03d", i+1), order.ID)
			assert.False(t, order.CreatedAt.After(order.DeliveryDate), "createdAt must not exceed deliveryDate")
			assert.False(t, order.CreatedAt.After(now))
			assert.False(t, order.CreatedAt.Before(now.AddDate(0, 0, -maxOrderAgeDays)))
			assert.False(t, order.LastActivity.Before(order.CreatedAt))
			assert.False(t, order.LastActivity.After(now))

			assert.True(t, types.ValidStatus(order.Status))
			assert.True(t, types.ValidPriority(order.Priority))
			assert.True(t, rosterHas(order.AssignedTo))

			age := now.Sub(order.CreatedAt)
			switch {
			case age < freshAgeCutoff:
				assert.Contains(t, []types.Status{types.StatusPending, types.StatusInProgress}, order.Status)
			case age < midAgeCutoff:
				assert.Contains(t, []types.Status{types.StatusInProgress, types.StatusQualityCheck, types.StatusRevision}, order.Status)
			default:
				assert.Contains(t, []types.Status{types.StatusCompleted, types.StatusDelivered}, order.Status)
			}

			assert.GreaterOrEqual(t, order.Progress, 0)
			assert.LessOrEqual(t, order.Progress, 100)
			if order.Status == types.StatusCompleted || order.Status == types.StatusDelivered {
				assert.Equal(t, 100, order.Progress)
			}

			assert.Regexp(t, priceFormat, order.Price)
			assert.Greater(t, order.Quantity, 0)
			assert.LessOrEqual(t, order.Files.Processed, order.Files.Received)

			seen := map[string]bool{}
			for _, tag := range order.Tags {
				assert.False(t, seen[tag], "tags must be deduplicated")
				seen[tag] = true
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := generate(rand.New(rand.NewSource(7)), 1, now)
	second := generate(rand.New(rand.NewSource(7)), 1, now)

	assert.Equal(t, first, second)
}
