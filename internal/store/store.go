package store

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/snapshelf/orderdesk/internal/types"
)

const cancelDefaultNote = "Cancelled by admin"

// inProgressFloor is the minimum progress an order shows once work has
// started on it.
const inProgressFloor = 25

// Store owns the working set of orders. All reads hand out copies; the map is
// the only writable state and every access goes through the mutex.
type Store struct {
	mu     sync.RWMutex
	orders map[string]types.Order
	now    func() time.Time
}

// Update is a partial update applied by BulkUpdate. Nil fields are skipped.
type Update struct {
	Status     *types.Status   `json:"status,omitempty"`
	Priority   *types.Priority `json:"priority,omitempty"`
	AssignedTo *string         `json:"assigned_to,omitempty"`
	Note       *string         `json:"note,omitempty"`
}

// BulkResult reports the outcome for one order of a bulk update.
type BulkResult struct {
	OrderID string       `json:"order_id"`
	Success bool         `json:"success"`
	Order   *types.Order `json:"order,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// New seeds a store with count generated orders. A zero now falls back to
// time.Now; tests pass a fixed clock and seed for determinism.
func New(count int, seed int64, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Store{
		orders: make(map[string]types.Order, count),
		now:    now,
	}
	at := now()
	for i := 0; i < count; i++ {
		order := generate(rng, i+1, at)
		s.orders[order.ID] = order
	}
	logger.Infof("Seeded order store with %d orders", count)
	return s
}

// List returns a copy of all orders sorted by creation time, most recent
// first. The dashboard table relies on this ordering.
func (s *Store) List() []types.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *Store) Get(orderID string) (*types.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}
	return &o, nil
}

// UpdateStatus moves an order to a new status. The transition graph is
// advisory: any status may follow any other. Completed orders are forced to
// full progress, freshly started ones to the in-progress floor. A non-empty
// note replaces the order's notes.
func (s *Store) UpdateStatus(orderID string, status types.Status, note string) (*types.Order, error) {
	if !types.ValidStatus(status) {
		return nil, fmt.Errorf("%w", &ValidationError{Field: "status", Value: string(status)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}

	o.Status = status
	switch status {
	case types.StatusCompleted:
		o.Progress = 100
	case types.StatusInProgress:
		if o.Progress < inProgressFloor {
			o.Progress = inProgressFloor
		}
	}
	if note != "" {
		o.Notes = note
	}
	o.LastActivity = s.now()

	s.orders[orderID] = o
	return &o, nil
}

func (s *Store) UpdatePriority(orderID string, priority types.Priority) (*types.Order, error) {
	if !types.ValidPriority(priority) {
		return nil, fmt.Errorf("%w", &ValidationError{Field: "priority", Value: string(priority)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}

	o.Priority = priority
	o.LastActivity = s.now()

	s.orders[orderID] = o
	return &o, nil
}

// Assign hands an order to a roster member. Assigning to the unassigned
// entry clears the order's assignee.
func (s *Store) Assign(orderID string, memberID string) (*types.Order, error) {
	if !rosterHas(memberID) {
		return nil, fmt.Errorf("%w", &TeamMemberNotFoundError{ID: memberID})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}

	o.AssignedTo = memberID
	o.LastActivity = s.now()

	s.orders[orderID] = o
	return &o, nil
}

// Cancel soft-deletes an order. Orders are never removed from the store.
func (s *Store) Cancel(orderID string, reason string) (*types.Order, error) {
	if reason == "" {
		reason = cancelDefaultNote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}

	o.Status = types.StatusCancelled
	o.Notes = reason
	o.LastActivity = s.now()

	s.orders[orderID] = o
	return &o, nil
}

// BulkUpdate applies the same update set to each order independently and
// collects per-item outcomes. A failed item never rolls back the ones that
// already succeeded.
func (s *Store) BulkUpdate(orderIDs []string, updates Update) []BulkResult {
	results := make([]BulkResult, 0, len(orderIDs))

	for _, id := range orderIDs {
		order, err := s.applyUpdate(id, updates)
		if err != nil {
			logger.Warnf("Bulk update of order %s failed: %s", id, err)
			results = append(results, BulkResult{OrderID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkResult{OrderID: id, Success: true, Order: order})
	}
	return results
}

func (s *Store) applyUpdate(orderID string, updates Update) (order *types.Order, err error) {
	note := ""
	if updates.Note != nil {
		note = *updates.Note
	}
	if updates.Status != nil {
		order, err = s.UpdateStatus(orderID, *updates.Status, note)
		if err != nil {
			return nil, err
		}
	} else if updates.Note != nil {
		order, err = s.setNote(orderID, note)
		if err != nil {
			return nil, err
		}
	}
	if updates.Priority != nil {
		order, err = s.UpdatePriority(orderID, *updates.Priority)
		if err != nil {
			return nil, err
		}
	}
	if updates.AssignedTo != nil {
		order, err = s.Assign(orderID, *updates.AssignedTo)
		if err != nil {
			return nil, err
		}
	}
	if order == nil {
		return s.Get(orderID)
	}
	return order, nil
}

func (s *Store) setNote(orderID string, note string) (*types.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
	}
	o.Notes = note
	o.LastActivity = s.now()

	s.orders[orderID] = o
	return &o, nil
}

// Roster returns the team roster with workload recomputed from live,
// non-terminal assignments.
func (s *Store) Roster() []types.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make(map[string]int)
	for _, o := range s.orders {
		if !o.Status.IsTerminal() {
			active[o.AssignedTo]++
		}
	}

	out := make([]types.TeamMember, len(teamRoster))
	copy(out, teamRoster)
	for i := range out {
		out[i].Workload = active[out[i].ID]
	}
	return out
}

func rosterHas(memberID string) bool {
	for _, m := range teamRoster {
		if m.ID == memberID {
			return true
		}
	}
	return false
}
