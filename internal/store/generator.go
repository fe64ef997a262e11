package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/snapshelf/orderdesk/internal/types"
)

const (
	maxOrderAgeDays  = 14
	maxDeliveryDays  = 5
	freshAgeCutoff   = 3 * 24 * time.Hour
	midAgeCutoff     = 8 * 24 * time.Hour
	unassignedChance = 0.6
)

var customerPool = []types.Customer{
	{Name: "Sarah Johnson", Email: "sarah.j@modernboutique.com", Company: "Modern Boutique"},
	{Name: "Mike Chen", Email: "mike@chenproducts.com", Company: "Chen Products Ltd"},
	{Name: "Laura Petrova", Email: "laura@nordicliving.se", Company: "Nordic Living"},
	{Name: "James Okafor", Email: "james@okaforjewels.com", Company: "Okafor Jewels"},
	{Name: "Emily Ross", Email: "emily.ross@rosshome.co", Company: "Ross Home Goods"},
	{Name: "Carlos Mendez", Email: "carlos@mendezsports.mx", Company: "Mendez Sports"},
	{Name: "Aisha Rahman", Email: "aisha@rahmantextiles.com", Company: "Rahman Textiles"},
	{Name: "Tom Becker", Email: "tom@beckeroptics.de", Company: "Becker Optics"},
	{Name: "Nina Kowalski", Email: "nina@kowalskidecor.pl", Company: "Kowalski Decor"},
	{Name: "Oliver Smith", Email: "oliver@smithandsons.uk", Company: "Smith & Sons"},
}

var orderTypePool = []struct {
	name string
	rate float64
}{
	{"Photo Retouching", 1.80},
	{"Background Removal", 0.90},
	{"Color Correction", 1.20},
	{"Image Masking", 2.10},
	{"Shadow & Reflection", 1.50},
	{"Ghost Mannequin", 2.40},
}

var platformPool = []string{"Shopify", "Amazon", "eBay", "Etsy", "WooCommerce", "Magento"}

var tagPool = []string{"ecommerce", "bulk", "rush", "jewelry", "apparel", "furniture", "re-edit"}

var notePool = []string{
	"",
	"",
	"Customer asked for natural shadows",
	"White background, 2000px square crop",
	"Match colors to the reference shots",
	"Second batch of an ongoing campaign",
}

// generate produces one synthetic order. Status is sampled from a pool biased
// by order age so the working set looks like a live pipeline: fresh orders sit
// at the front of the lifecycle, old ones at the back.
func generate(rng *rand.Rand, seq int, now time.Time) types.Order {
	age := time.Duration(rng.Int63n(int64(maxOrderAgeDays * 24 * time.Hour)))
	createdAt := now.Add(-age)
	deliveryDate := createdAt.Add(time.Duration(1+rng.Intn(maxDeliveryDays)) * 24 * time.Hour)

	var statusPool []types.Status
	switch {
	case age < freshAgeCutoff:
		statusPool = []types.Status{types.StatusPending, types.StatusInProgress}
	case age < midAgeCutoff:
		statusPool = []types.Status{types.StatusInProgress, types.StatusQualityCheck, types.StatusRevision}
	default:
		statusPool = []types.Status{types.StatusCompleted, types.StatusDelivered}
	}
	status := statusPool[rng.Intn(len(statusPool))]

	orderType := orderTypePool[rng.Intn(len(orderTypePool))]
	quantity := 5 + rng.Intn(116)
	progress := progressFor(status, rng)
	processed := quantity * progress / 100

	files := types.FileCounters{Received: quantity, Processed: processed}
	if status == types.StatusDelivered {
		files.Delivered = processed
	}

	assignedTo := types.Unassigned
	if status != types.StatusPending || rng.Float64() >= unassignedChance {
		assignedTo = teamRoster[rng.Intn(len(teamRoster)-1)].ID
	}

	return types.Order{
		ID:           fmt.Sprintf("ORD-%03d", seq),
		Customer:     customerPool[rng.Intn(len(customerPool))],
		OrderType:    orderType.name,
		Platform:     platformPool[rng.Intn(len(platformPool))],
		Quantity:     quantity,
		Price:        fmt.Sprintf("%.2f", float64(quantity)*orderType.rate),
		Status:       status,
		Priority:     types.Priorities()[rng.Intn(len(types.Priorities()))],
		AssignedTo:   assignedTo,
		CreatedAt:    createdAt,
		DeliveryDate: deliveryDate,
		LastActivity: createdAt.Add(time.Duration(rng.Int63n(int64(age) + 1))),
		Progress:     progress,
		Notes:        notePool[rng.Intn(len(notePool))],
		Files:        files,
		Tags:         sampleTags(rng),
	}
}

func progressFor(status types.Status, rng *rand.Rand) int {
	switch status {
	case types.StatusPending:
		return rng.Intn(11)
	case types.StatusInProgress:
		return 20 + rng.Intn(51)
	case types.StatusQualityCheck:
		return 70 + rng.Intn(21)
	case types.StatusRevision:
		return 50 + rng.Intn(31)
	default:
		return 100
	}
}

func sampleTags(rng *rand.Rand) []string {
	tags := make([]string, 0, 3)
	seen := make(map[string]bool)
	for n := rng.Intn(4); n > 0; n-- {
		tag := tagPool[rng.Intn(len(tagPool))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
