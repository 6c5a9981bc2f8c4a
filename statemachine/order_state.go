// Package statemachine defines the order status lifecycle:
//
//	placed → confirmed → preparing → ready → out_for_delivery → delivered
//
// with cancelled reachable from any non-terminal status. delivered and
// cancelled are terminal. Any recognized status may be requested from a
// non-terminal one (the happy path is linear, but the machine does not force
// ordering); unrecognized targets and transitions out of a terminal status
// are rejected.
package statemachine

import (
	"errors"
	"fmt"

	"github.com/krish2434/foodcart/models"
)

var (
	// ErrInvalidStatus is returned when the requested target is not a
	// recognized order status.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrTerminalStatus is returned when the order is already in a terminal
	// status and no further transition is permitted.
	ErrTerminalStatus = errors.New("order is in a terminal status")
)

// lifecycle lists the statuses along the linear happy path, in order.
var lifecycle = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var known = func() map[models.OrderStatus]bool {
	m := map[models.OrderStatus]bool{models.StatusCancelled: true}
	for _, s := range lifecycle {
		m[s] = true
	}
	return m
}()

// AllStatuses returns every recognized order status.
func AllStatuses() []models.OrderStatus {
	return append(append([]models.OrderStatus{}, lifecycle...), models.StatusCancelled)
}

// IsValid reports whether s is a recognized order status.
func IsValid(s models.OrderStatus) bool {
	return known[s]
}

// IsTerminal reports whether no further transitions are permitted from s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// NextStatuses returns the happy-path successor of a status plus cancelled.
// Informational only: CanTransition is the authority on what is permitted.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	if IsTerminal(from) {
		return nil
	}
	var nexts []models.OrderStatus
	for i, s := range lifecycle {
		if s == from && i+1 < len(lifecycle) {
			nexts = append(nexts, lifecycle[i+1])
		}
	}
	return append(nexts, models.StatusCancelled)
}

// CanTransition checks whether an order currently at from may move to to.
func CanTransition(from, to models.OrderStatus) error {
	if !IsValid(to) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if IsTerminal(from) {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	return nil
}
