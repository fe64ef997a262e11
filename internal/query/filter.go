package query

import (
	"strings"
	"time"

	"github.com/snapshelf/orderdesk/internal/types"
)

// All is the sentinel meaning "do not filter on this field". An empty string
// works the same way, so omitted query params need no special handling.
const All = "all"

// Filters holds the dashboard's filter state. Every field is optional; the
// provided ones combine with logical AND.
type Filters struct {
	Status     string
	Priority   string
	AssignedTo string
	Search     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Apply returns the orders matching every supplied predicate. It is a pure
// function: the input slice is never modified and its order is preserved, so
// an empty filter set returns the input as-is.
func Apply(orders []types.Order, f Filters) []types.Order {
	out := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, f) {
			out = append(out, o)
		}
	}
	return out
}

func matches(o types.Order, f Filters) bool {
	if isSet(f.Status) && string(o.Status) != f.Status {
		return false
	}
	if isSet(f.Priority) && string(o.Priority) != f.Priority {
		return false
	}
	if isSet(f.AssignedTo) && o.AssignedTo != f.AssignedTo {
		return false
	}
	if isSet(f.Search) && !matchesSearch(o, f.Search) {
		return false
	}
	if f.DateFrom != nil && dateOf(o.CreatedAt).Before(dateOf(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && dateOf(o.CreatedAt).After(dateOf(*f.DateTo)) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the order id
// and the customer fields; any single hit is a match.
func matchesSearch(o types.Order, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{o.ID, o.Customer.Name, o.Customer.Email, o.Customer.Company} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Date bounds are inclusive and compared at day granularity; time of day does
// not matter.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isSet(v string) bool {
	return v != "" && v != All
}
