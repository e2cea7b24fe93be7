// Package ledger holds the booking being assembled for one operator session:
// customer, invoice header, flight and car line items, and their running totals.
//
// The ledger performs no I/O and no logging. String based Add* methods parse the
// fare themselves and reject the whole item when it is malformed; validated input
// should go through AppendFlights / AppendCars instead.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/tour-invoice-desk/internal/domain"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/entity"
)

// Booking accumulates one session's line items. It is not safe for concurrent use;
// the owning session serializes access.
type Booking struct {
	customer  entity.Customer
	invoice   entity.InvoiceMeta
	flights   []entity.FlightLineItem
	cars      []entity.CarLineItem
	airfare   int64
	carfare   int64
	finalized bool
	version   int
	now       func() time.Time
}

// New creates an empty booking dated today.
func New() *Booking {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty booking whose default invoice date comes from now.
func NewWithClock(now func() time.Time) *Booking {
	if now == nil {
		now = time.Now
	}
	return &Booking{
		invoice: entity.InvoiceMeta{Date: truncateDay(now())},
		now:     now,
	}
}

// SetCustomer replaces name, contact and address in one step.
func (b *Booking) SetCustomer(name, contactNo, address string) error {
	if b.finalized {
		return domain.ErrBookingFinalized
	}
	b.customer = entity.Customer{Name: name, ContactNo: contactNo, Address: address}
	b.version++
	return nil
}

// SetInvoiceMeta sets invoice number and date. A zero date means today.
func (b *Booking) SetInvoiceMeta(number string, date time.Time) error {
	if b.finalized {
		return domain.ErrBookingFinalized
	}
	if date.IsZero() {
		date = b.now()
	}
	b.invoice = entity.InvoiceMeta{Number: number, Date: truncateDay(date)}
	b.version++
	return nil
}

// AddFlight appends a flight for a single passenger.
func (b *Booking) AddFlight(pnr, source, destination, fare string) error {
	return b.AddFlightWithPassengers(pnr, source, destination, fare, entity.DefaultPassengers)
}

// AddFlightWithPassengers appends a flight and adds its fare to the flight subtotal.
// A fare that is not a non-negative integer leaves the booking untouched.
func (b *Booking) AddFlightWithPassengers(pnr, source, destination, fare string, passengers int) error {
	amount, err := ParseFare(fare)
	if err != nil {
		return err
	}
	return b.AppendFlights([]entity.FlightLineItem{{
		PNR:         pnr,
		Source:      source,
		Destination: destination,
		Fare:        amount,
		Passengers:  passengers,
	}})
}

// AddCar appends a car hire and adds its fare to the car subtotal.
func (b *Booking) AddCar(carNo, source, destination, fare string) error {
	amount, err := ParseFare(fare)
	if err != nil {
		return err
	}
	return b.AppendCars([]entity.CarLineItem{{
		CarNo:       carNo,
		Source:      source,
		Destination: destination,
		Fare:        amount,
	}})
}

// AppendFlights commits already validated flights. Either every item is appended or none is.
func (b *Booking) AppendFlights(items []entity.FlightLineItem) error {
	if b.finalized {
		return domain.ErrBookingFinalized
	}
	sum := b.airfare
	for i, f := range items {
		if f.Fare < 0 {
			return fmt.Errorf("%w: flight %d: fare must not be negative", domain.ErrInvalidInput, i+1)
		}
		if f.Fare > entity.MaxFare {
			return fmt.Errorf("%w: flight %d: fare must not exceed %d", domain.ErrInvalidInput, i+1, entity.MaxFare)
		}
		if f.Passengers < 1 {
			return fmt.Errorf("%w: flight %d: passengers must be at least 1", domain.ErrInvalidInput, i+1)
		}
		var ok bool
		if sum, ok = addFare(sum, f.Fare); !ok {
			return fmt.Errorf("%w: flight %d: flight subtotal would overflow", domain.ErrInvalidInput, i+1)
		}
	}
	if _, ok := addFare(sum, b.carfare); !ok {
		return fmt.Errorf("%w: grand total would overflow", domain.ErrInvalidInput)
	}
	if len(items) == 0 {
		return nil
	}
	b.flights = append(b.flights, items...)
	b.airfare = sum
	b.version++
	return nil
}

// AppendCars commits already validated car hires. Either every item is appended or none is.
func (b *Booking) AppendCars(items []entity.CarLineItem) error {
	if b.finalized {
		return domain.ErrBookingFinalized
	}
	sum := b.carfare
	for i, c := range items {
		if c.Fare < 0 {
			return fmt.Errorf("%w: car %d: fare must not be negative", domain.ErrInvalidInput, i+1)
		}
		if c.Fare > entity.MaxFare {
			return fmt.Errorf("%w: car %d: fare must not exceed %d", domain.ErrInvalidInput, i+1, entity.MaxFare)
		}
		var ok bool
		if sum, ok = addFare(sum, c.Fare); !ok {
			return fmt.Errorf("%w: car %d: car subtotal would overflow", domain.ErrInvalidInput, i+1)
		}
	}
	if _, ok := addFare(b.airfare, sum); !ok {
		return fmt.Errorf("%w: grand total would overflow", domain.ErrInvalidInput)
	}
	if len(items) == 0 {
		return nil
	}
	b.cars = append(b.cars, items...)
	b.carfare = sum
	b.version++
	return nil
}

// FlightSubtotal is the sum of all flight fares.
func (b *Booking) FlightSubtotal() int64 { return b.airfare }

// CarSubtotal is the sum of all car fares.
func (b *Booking) CarSubtotal() int64 { return b.carfare }

// GrandTotal is FlightSubtotal + CarSubtotal.
func (b *Booking) GrandTotal() int64 { return b.airfare + b.carfare }

// FlightCount, CarCount: number of line items per category.
func (b *Booking) FlightCount() int { return len(b.flights) }

func (b *Booking) CarCount() int { return len(b.cars) }

// Finalize makes the booking read-only. Calling it twice is harmless.
func (b *Booking) Finalize() {
	if !b.finalized {
		b.finalized = true
		b.version++
	}
}

// Finalized reports whether Finalize has been called.
func (b *Booking) Finalized() bool { return b.finalized }

// Version increments on every successful mutation.
func (b *Booking) Version() int { return b.version }

// Snapshot returns an immutable copy of the current booking.
func (b *Booking) Snapshot() Snapshot {
	flights := make([]entity.FlightLineItem, len(b.flights))
	copy(flights, b.flights)
	cars := make([]entity.CarLineItem, len(b.cars))
	copy(cars, b.cars)
	return Snapshot{
		Customer:       b.customer,
		Invoice:        b.invoice,
		Flights:        flights,
		Cars:           cars,
		FlightSubtotal: b.airfare,
		CarSubtotal:    b.carfare,
		Finalized:      b.finalized,
		Version:        b.version,
	}
}

// ParseFare parses a whole-number fare. Surrounding blanks are ignored; negatives are rejected.
func ParseFare(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fare %q is not a whole number", domain.ErrInvalidInput, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: fare %q must not be negative", domain.ErrInvalidInput, s)
	}
	if n > entity.MaxFare {
		return 0, fmt.Errorf("%w: fare %q must not exceed %d", domain.ErrInvalidInput, s, entity.MaxFare)
	}
	return n, nil
}

// addFare adds two non-negative amounts, reporting false on int64 overflow.
func addFare(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
