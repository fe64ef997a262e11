package types

import (
	"strconv"
	"time"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusInProgress   Status = "in-progress"
	StatusQualityCheck Status = "quality-check"
	StatusRevision     Status = "revision"
	StatusCompleted    Status = "completed"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Unassigned is a real roster entry, so assigning an order to it clears the
// assignee without special-casing.
const Unassigned = "unassigned"

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type FileCounters struct {
	Received  int `json:"received"`
	Processed int `json:"processed"`
	Delivered int `json:"delivered"`
}

type Order struct {
	ID           string       `json:"id"`
	Customer     Customer     `json:"customer"`
	OrderType    string       `json:"order_type"`
	Platform     string       `json:"platform"`
	Quantity     int          `json:"quantity"`
	Price        string       `json:"price"`
	Status       Status       `json:"status"`
	Priority     Priority     `json:"priority"`
	AssignedTo   string       `json:"assigned_to"`
	CreatedAt    time.Time    `json:"created_at"`
	DeliveryDate time.Time    `json:"delivery_date"`
	LastActivity time.Time    `json:"last_activity"`
	Progress     int          `json:"progress"`
	Notes        string       `json:"notes"`
	Files        FileCounters `json:"files"`
	Tags         []string     `json:"tags"`
}

// IsTerminal reports whether the order has left the production pipeline.
// Terminal orders are never overdue and carry no workload.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDelivered || s == StatusCancelled
}

// PriceValue parses the two-decimal price string. A malformed price counts as
// zero; the generator is the only writer, so in practice it never is.
func (o Order) PriceValue() float64 {
	v, err := strconv.ParseFloat(o.Price, 64)
	if err != nil {
		return 0
	}
	return v
}
