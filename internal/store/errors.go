package store

import "fmt"

type OrderNotFoundError struct {
	ID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.ID)
}

type TeamMemberNotFoundError struct {
	ID string
}

func (e *TeamMemberNotFoundError) Error() string {
	return fmt.Sprintf("Team member %s not found", e.ID)
}

type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s value %q", e.Field, e.Value)
}
