// Package booking drives the operator's booking session: customer, flights, cars, invoice.
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/internal/application/validation"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/ledger"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/session"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// ConsoleUseCase holds the single active booking session and applies operator
// actions to it one at a time.
type ConsoleUseCase struct {
	mu        sync.Mutex
	validator *validation.Validator
	composer  *composer.Composer
	log       *logger.Logger
	now       func() time.Time

	id      string
	state   session.State
	booking *ledger.Booking
}

// NewConsoleUseCase builds the use case and opens a first empty session.
// now may be nil (time.Now).
func NewConsoleUseCase(c *composer.Composer, log *logger.Logger, now func() time.Time) *ConsoleUseCase {
	if now == nil {
		now = time.Now
	}
	uc := &ConsoleUseCase{
		validator: validation.NewValidator(now),
		composer:  c,
		log:       log.Named("booking"),
		now:       now,
	}
	uc.reset()
	return uc
}

// NewSession discards the active booking and starts an empty one.
func (uc *ConsoleUseCase) NewSession(_ context.Context) dto.SessionResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	previous := uc.id
	uc.reset()
	uc.log.Info().Str("session_id", uc.id).Str("previous_session_id", previous).Msg("new booking session")
	return uc.view()
}

// Session returns the state of the active session.
func (uc *ConsoleUseCase) Session(_ context.Context) dto.SessionResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.view()
}

// SubmitCustomer records customer and invoice header and moves on to flights.
func (uc *ConsoleUseCase) SubmitCustomer(_ context.Context, in dto.CustomerRequest) (dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.expect(session.EventCustomerSubmitted); err != nil {
		return uc.view(), err
	}
	details, err := uc.validator.Customer(in)
	if err != nil {
		uc.rejected(session.EventCustomerSubmitted, err)
		return uc.view(), err
	}
	c := details.Customer
	if err := uc.booking.SetCustomer(c.Name, c.ContactNo, c.Address); err != nil {
		return uc.view(), err
	}
	if err := uc.booking.SetInvoiceMeta(details.Invoice.Number, details.Invoice.Date); err != nil {
		return uc.view(), err
	}
	return uc.advance(session.EventCustomerSubmitted)
}

// SubmitFlightBatch validates every row, then commits all of them and moves on to cars.
func (uc *ConsoleUseCase) SubmitFlightBatch(_ context.Context, in dto.FlightBatchRequest) (dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.expect(session.EventFlightsSubmitted); err != nil {
		return uc.view(), err
	}
	items, err := uc.validator.FlightBatch(in.Rows)
	if err != nil {
		uc.rejected(session.EventFlightsSubmitted, err)
		return uc.view(), err
	}
	if err := uc.booking.AppendFlights(items); err != nil {
		return uc.view(), err
	}
	return uc.advance(session.EventFlightsSubmitted)
}

// SkipFlights finalizes the booking without adding flights.
func (uc *ConsoleUseCase) SkipFlights(_ context.Context) (dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.expect(session.EventFlightsSkipped); err != nil {
		return uc.view(), err
	}
	return uc.advance(session.EventFlightsSkipped)
}

// SubmitCarBatch validates every row, then commits all of them and finalizes the booking.
func (uc *ConsoleUseCase) SubmitCarBatch(_ context.Context, in dto.CarBatchRequest) (dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.expect(session.EventCarsSubmitted); err != nil {
		return uc.view(), err
	}
	items, err := uc.validator.CarBatch(in.Rows)
	if err != nil {
		uc.rejected(session.EventCarsSubmitted, err)
		return uc.view(), err
	}
	if err := uc.booking.AppendCars(items); err != nil {
		return uc.view(), err
	}
	return uc.advance(session.EventCarsSubmitted)
}

// SkipCars finalizes the booking without adding cars.
func (uc *ConsoleUseCase) SkipCars(_ context.Context) (dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.expect(session.EventCarsSkipped); err != nil {
		return uc.view(), err
	}
	return uc.advance(session.EventCarsSkipped)
}

// GetComposedInvoice composes the finalized booking.
// Returns domain.ErrNotFinalized while the operator is still entering data.
func (uc *ConsoleUseCase) GetComposedInvoice(_ context.Context) (*composer.Invoice, error) {
	uc.mu.Lock()
	snap := uc.booking.Snapshot()
	uc.mu.Unlock()

	inv, err := uc.composer.Compose(snap)
	if err != nil {
		return nil, fmt.Errorf("compose invoice: %w", err)
	}
	return inv, nil
}

// ── internals (caller holds uc.mu) ────────────────────────────────────────────

func (uc *ConsoleUseCase) reset() {
	uc.id = uuid.New().String()
	uc.state = session.StateCollectingCustomer
	uc.booking = ledger.NewWithClock(uc.now)
}

func (uc *ConsoleUseCase) expect(e session.Event) error {
	if session.Allows(uc.state, e) {
		return nil
	}
	_, err := session.Next(uc.state, e)
	uc.log.Warn().Str("session_id", uc.id).Str("state", string(uc.state)).Str("event", string(e)).Msg("step out of order")
	return err
}

func (uc *ConsoleUseCase) advance(e session.Event) (dto.SessionResponse, error) {
	next, err := session.Next(uc.state, e)
	if err != nil {
		return uc.view(), err
	}
	uc.state = next
	if next == session.StateFinalized {
		uc.booking.Finalize()
		uc.logSummary()
	}
	uc.log.Info().
		Str("session_id", uc.id).
		Str("event", string(e)).
		Str("state", string(uc.state)).
		Int("flights", uc.booking.FlightCount()).
		Int("cars", uc.booking.CarCount()).
		Int64("grand_total", uc.booking.GrandTotal()).
		Msg("booking step committed")
	return uc.view(), nil
}

func (uc *ConsoleUseCase) rejected(e session.Event, err error) {
	uc.log.Info().Str("session_id", uc.id).Str("event", string(e)).Err(err).Msg("submission rejected")
}

// logSummary records the finalized booking at debug level.
func (uc *ConsoleUseCase) logSummary() {
	snap := uc.booking.Snapshot()
	uc.log.Debug().
		Str("session_id", uc.id).
		Str("customer", snap.Customer.Name).
		Str("contact_no", snap.Customer.ContactNo).
		Str("invoice", snap.Invoice.Number).
		Str("date", snap.Invoice.Date.Format(validation.DateLayout)).
		Int64("airfare_total", snap.FlightSubtotal).
		Int64("carfare_total", snap.CarSubtotal).
		Int64("grand_total", snap.GrandTotal()).
		Msg("booking finalized")
}

func (uc *ConsoleUseCase) view() dto.SessionResponse {
	snap := uc.booking.Snapshot()
	return dto.SessionResponse{
		ID:             uc.id,
		State:          string(uc.state),
		Version:        snap.Version,
		InvoiceNumber:  snap.Invoice.Number,
		FlightCount:    len(snap.Flights),
		CarCount:       len(snap.Cars),
		FlightSubtotal: snap.FlightSubtotal,
		CarSubtotal:    snap.CarSubtotal,
		GrandTotal:     snap.GrandTotal(),
	}
}
