package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/internal/application/validation"
	"github.com/jhoicas/tour-invoice-desk/internal/domain"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/session"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
}

func newConsole() *booking.ConsoleUseCase {
	return booking.NewConsoleUseCase(composer.New(composer.DefaultBranding()), logger.Nop(), fixedClock)
}

func raoCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:          "A. Rao",
		ContactNo:     "9999999999",
		Address:       "12 MG Road",
		InvoiceNumber: "INV-001",
		Date:          "2024-01-15",
	}
}

func TestConsole_FullFlow(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()

	view := uc.Session(ctx)
	assert.Equal(t, string(session.StateCollectingCustomer), view.State)
	assert.NotEmpty(t, view.ID)

	view, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)
	assert.Equal(t, string(session.StateCollectingFlights), view.State)
	assert.Equal(t, "INV-001", view.InvoiceNumber)

	view, err = uc.SubmitFlightBatch(ctx, dto.FlightBatchRequest{Rows: []dto.FlightRowRequest{
		{PNR: "XJ123", Source: "MUM", Destination: "DEL", Fare: "5000", Passengers: "2"},
	}})
	require.NoError(t, err)
	assert.Equal(t, string(session.StateCollectingCars), view.State)
	assert.Equal(t, int64(5000), view.FlightSubtotal)
	assert.Equal(t, int64(5000), view.GrandTotal)

	view, err = uc.SubmitCarBatch(ctx, dto.CarBatchRequest{Rows: []dto.CarRowRequest{
		{CarNo: "MH12AB1234", Source: "MUM", Destination: "PUNE", Fare: "1500"},
	}})
	require.NoError(t, err)
	assert.Equal(t, string(session.StateFinalized), view.State)
	assert.Equal(t, 1, view.FlightCount)
	assert.Equal(t, 1, view.CarCount)
	assert.Equal(t, int64(1500), view.CarSubtotal)
	assert.Equal(t, int64(6500), view.GrandTotal)

	inv, err := uc.GetComposedInvoice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A. Rao", inv.Customer.Name)
	assert.Equal(t, "15-01-2024", inv.Customer.DateText)
	assert.Equal(t, int64(6500), inv.Totals.GrandTotal)
}

func TestConsole_SkipFlightsFinalizes(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()
	_, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)

	view, err := uc.SkipFlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(session.StateFinalized), view.State)
	assert.Zero(t, view.GrandTotal)

	inv, err := uc.GetComposedInvoice(ctx)
	require.NoError(t, err)
	assert.Nil(t, inv.Flights)
	assert.Nil(t, inv.Cars)

	_, err = uc.SubmitCarBatch(ctx, dto.CarBatchRequest{Rows: []dto.CarRowRequest{
		{CarNo: "C1", Source: "A", Destination: "B", Fare: "100"},
	}})
	assert.ErrorIs(t, err, domain.ErrOutOfOrder)
}

func TestConsole_SkipCarsKeepsFlights(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()
	_, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)
	_, err = uc.SubmitFlightBatch(ctx, dto.FlightBatchRequest{Rows: []dto.FlightRowRequest{
		{PNR: "P1", Source: "BLR", Destination: "GOI", Fare: "3200"},
	}})
	require.NoError(t, err)

	view, err := uc.SkipCars(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(session.StateFinalized), view.State)
	assert.Equal(t, int64(3200), view.GrandTotal)
}

func TestConsole_OutOfOrder(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()

	_, err := uc.SubmitFlightBatch(ctx, dto.FlightBatchRequest{Rows: []dto.FlightRowRequest{
		{PNR: "P1", Source: "A", Destination: "B", Fare: "1"},
	}})
	assert.ErrorIs(t, err, domain.ErrOutOfOrder)

	_, err = uc.SkipCars(ctx)
	assert.ErrorIs(t, err, domain.ErrOutOfOrder)

	_, err = uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)
	_, err = uc.SubmitCustomer(ctx, raoCustomer())
	assert.ErrorIs(t, err, domain.ErrOutOfOrder)

	assert.Equal(t, string(session.StateCollectingFlights), uc.Session(ctx).State)
}

func TestConsole_BatchWithBadRowCommitsNothing(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()
	_, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)

	view, err := uc.SubmitFlightBatch(ctx, dto.FlightBatchRequest{Rows: []dto.FlightRowRequest{
		{PNR: "P1", Source: "MUM", Destination: "DEL", Fare: "4000"},
		{PNR: "P2", Source: "", Destination: "BLR", Fare: "abc"},
		{PNR: "P3", Source: "DEL", Destination: "GOI", Fare: "2500"},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var batchErr *validation.BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Equal(t, []int{2}, batchErr.RowNumbers())

	assert.Equal(t, string(session.StateCollectingFlights), view.State)
	assert.Zero(t, view.FlightCount)
	assert.Zero(t, view.GrandTotal)

	view, err = uc.SubmitFlightBatch(ctx, dto.FlightBatchRequest{Rows: []dto.FlightRowRequest{
		{PNR: "P1", Source: "MUM", Destination: "DEL", Fare: "4000"},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), view.FlightSubtotal)
}

func TestConsole_InvalidCustomerStaysOnStep(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()

	req := raoCustomer()
	req.Name = "  "
	view, err := uc.SubmitCustomer(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, string(session.StateCollectingCustomer), view.State)
}

func TestConsole_InvoiceBeforeFinalize(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()
	_, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)

	_, err = uc.GetComposedInvoice(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFinalized)
}

func TestConsole_NewSessionResets(t *testing.T) {
	ctx := context.Background()
	uc := newConsole()
	first := uc.Session(ctx)
	_, err := uc.SubmitCustomer(ctx, raoCustomer())
	require.NoError(t, err)
	_, err = uc.SkipFlights(ctx)
	require.NoError(t, err)

	fresh := uc.NewSession(ctx)
	assert.NotEqual(t, first.ID, fresh.ID)
	assert.Equal(t, string(session.StateCollectingCustomer), fresh.State)
	assert.Empty(t, fresh.InvoiceNumber)

	_, err = uc.GetComposedInvoice(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFinalized)
}
