// Package session defines the forward-only booking flow an operator walks through.
package session

import (
	"fmt"

	"github.com/jhoicas/tour-invoice-desk/internal/domain"
)

// State of a booking session.
type State string

const (
	StateCollectingCustomer State = "COLLECTING_CUSTOMER"
	StateCollectingFlights  State = "COLLECTING_FLIGHTS"
	StateCollectingCars     State = "COLLECTING_CARS"
	StateFinalized          State = "FINALIZED"
)

// Event is an operator action that moves the flow.
type Event string

const (
	EventCustomerSubmitted Event = "customer_submitted"
	EventFlightsSubmitted  Event = "flights_submitted"
	EventFlightsSkipped    Event = "flights_skipped"
	EventCarsSubmitted     Event = "cars_submitted"
	EventCarsSkipped       Event = "cars_skipped"
)

var transitions = map[State]map[Event]State{
	StateCollectingCustomer: {
		EventCustomerSubmitted: StateCollectingFlights,
	},
	StateCollectingFlights: {
		EventFlightsSubmitted: StateCollectingCars,
		EventFlightsSkipped:   StateFinalized,
	},
	StateCollectingCars: {
		EventCarsSubmitted: StateFinalized,
		EventCarsSkipped:   StateFinalized,
	},
}

// Next returns the state reached from s on e, or domain.ErrOutOfOrder.
func Next(s State, e Event) (State, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s while %s", domain.ErrOutOfOrder, e, s)
}

// Allows reports whether e is accepted in state s.
func Allows(s State, e Event) bool {
	_, ok := transitions[s][e]
	return ok
}
