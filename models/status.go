package models

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// statusOrder is the linear lifecycle every order walks through.
var statusOrder = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range statusOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Next returns the immediate successor of s, or false when s is terminal
// or not a known status.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusOrder {
		if st == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return "", false
}

// CanTransition allows only the single forward step from current to its
// immediate successor. Same-state resubmission, skipping ahead and moving
// backward are all rejected.
func CanTransition(current, requested OrderStatus) error {
	next, ok := current.Next()
	if !ok {
		return fmt.Errorf("order status %q is terminal", current)
	}
	if requested != next {
		return fmt.Errorf("cannot move order from %q to %q", current, requested)
	}
	return nil
}
