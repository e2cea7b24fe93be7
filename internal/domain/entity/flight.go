package entity

import "github.com/shopspring/decimal"

// DefaultPassengers is the passenger count used when the operator leaves it blank.
const DefaultPassengers = 1

// MaxFare caps a single line item's fare. Any realistic booking stays far below
// it, and thousands of capped items still fit in an int64 total.
const MaxFare int64 = 1_000_000_000_000

// FlightLineItem is one flight booked for the customer.
// Fare is the whole amount for all passengers (fare >= 0, passengers >= 1).
type FlightLineItem struct {
	PNR         string
	Source      string
	Destination string
	Fare        int64
	Passengers  int
}

// UnitFare returns the per-passenger price, used by renderers that itemize price x quantity.
func (f FlightLineItem) UnitFare() decimal.Decimal {
	passengers := f.Passengers
	if passengers < 1 {
		passengers = DefaultPassengers
	}
	return decimal.NewFromInt(f.Fare).Div(decimal.NewFromInt(int64(passengers)))
}
