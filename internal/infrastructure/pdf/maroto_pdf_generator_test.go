package pdf

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/ledger"
)

func composedInvoice(t *testing.T, branding composer.Branding) *composer.Invoice {
	t.Helper()
	b := ledger.New()
	require.NoError(t, b.SetCustomer("A. Rao", "9999999999", "12 MG Road"))
	require.NoError(t, b.SetInvoiceMeta("INV-001", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, b.AddFlightWithPassengers("XJ123", "MUM", "DEL", "5000", 2))
	require.NoError(t, b.AddCar("MH12AB1234", "MUM", "PUNE", "1500"))
	b.Finalize()

	inv, err := composer.New(branding).Compose(b.Snapshot())
	require.NoError(t, err)
	return inv
}

func TestGenerateInvoicePDF_ProducesDocument(t *testing.T) {
	inv := composedInvoice(t, composer.DefaultBranding())

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestGenerateInvoicePDF_CarriesInvoiceNumberAndTotal(t *testing.T) {
	inv := composedInvoice(t, composer.DefaultBranding())
	require.Equal(t, int64(6500), inv.Totals.GrandTotal)

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv)
	require.NoError(t, err)
	assert.Contains(t, string(out), "/Title (Invoice INV-001)")
	assert.Contains(t, string(out), "/Subject (A. Rao - Total Rs. 6,500.00)")
}

func TestMetaText(t *testing.T) {
	s, utf8 := metaText("Invoice INV-001")
	assert.Equal(t, "Invoice INV-001", s)
	assert.False(t, utf8)

	_, utf8 = metaText("Invoice ₹-7")
	assert.True(t, utf8)
}

func TestGenerateInvoicePDF_WithQRAndLetter(t *testing.T) {
	branding := composer.DefaultBranding()
	branding.UPIHandle = "ridhisidhi@xyz"
	branding.PageSize = "Letter"

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), composedInvoice(t, branding))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_EmptyBooking(t *testing.T) {
	b := ledger.New()
	b.Finalize()
	inv, err := composer.New(composer.DefaultBranding()).Compose(b.Snapshot())
	require.NoError(t, err)

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateInvoicePDF_NilInvoice(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, pagesize.A4, pageSize("a4"))
	assert.Equal(t, pagesize.Letter, pageSize(" LETTER "))
	assert.Equal(t, pagesize.A4, pageSize("napkin"))
	assert.Equal(t, pagesize.A4, pageSize(""))
}

func TestUPIURI(t *testing.T) {
	inv := composedInvoice(t, composer.DefaultBranding())
	uri := upiURI("agency@bank", inv)
	require.True(t, strings.HasPrefix(uri, "upi://pay?"))

	q, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "agency@bank", q.Get("pa"))
	assert.Equal(t, "6500.00", q.Get("am"))
	assert.Equal(t, "Invoice INV-001", q.Get("tn"))
}
