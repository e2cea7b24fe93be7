package textrender_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/ledger"
	"github.com/jhoicas/tour-invoice-desk/internal/infrastructure/textrender"
)

func compose(t *testing.T, b *ledger.Booking) *composer.Invoice {
	t.Helper()
	b.Finalize()
	inv, err := composer.New(composer.DefaultBranding()).Compose(b.Snapshot())
	require.NoError(t, err)
	return inv
}

func TestRenderText_Scenario(t *testing.T) {
	b := ledger.New()
	require.NoError(t, b.SetCustomer("A. Rao", "9999999999", "12 MG Road"))
	require.NoError(t, b.SetInvoiceMeta("INV-001", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, b.AddFlightWithPassengers("XJ123", "MUM", "DEL", "5000", 2))
	require.NoError(t, b.AddCar("MH12AB1234", "MUM", "PUNE", "1500"))

	out, err := textrender.NewRenderer().RenderText(compose(t, b))
	require.NoError(t, err)

	for _, want := range []string{
		"Ridhi Sidhi Tours & Travels\n",
		"Customer Name: A. Rao\n",
		"Contact Number: 9999999999\n",
		"Invoice Number: INV-001\n",
		"Date: 15-01-2024\n",
		"Flight Bookings:\n",
		"Total Airfare: Rs. 5,000\n",
		"Car Bookings:\n",
		"Total Carfare: Rs. 1,500\n",
		"Grand Total: Rs. 6,500\n",
		"Thank you for choosing Ridhi Sidhi Tours & Travels!\n",
	} {
		assert.Contains(t, out, want)
	}

	flights := strings.Index(out, "Flight Bookings:")
	cars := strings.Index(out, "Car Bookings:")
	grand := strings.Index(out, "Grand Total:")
	assert.Less(t, flights, cars)
	assert.Less(t, cars, grand)

	var flightLine string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "XJ123") {
			flightLine = l
		}
	}
	assert.Equal(t, []string{"XJ123", "MUM", "DEL", "2", "5,000"}, strings.Fields(flightLine))
}

func TestRenderText_OmitsEmptySections(t *testing.T) {
	b := ledger.New()
	require.NoError(t, b.SetCustomer("B", "1", "X"))

	out, err := textrender.NewRenderer().RenderText(compose(t, b))
	require.NoError(t, err)
	assert.NotContains(t, out, "Flight Bookings:")
	assert.NotContains(t, out, "Car Bookings:")
	assert.Contains(t, out, "Grand Total: Rs. 0\n")
}

func TestRenderText_NilInvoice(t *testing.T) {
	_, err := textrender.NewRenderer().RenderText(nil)
	assert.Error(t, err)
}
