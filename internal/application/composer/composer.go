// Package composer turns a finalized booking snapshot into the structured invoice
// every renderer consumes.
package composer

import (
	"strings"

	"github.com/jhoicas/tour-invoice-desk/internal/domain"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/ledger"
)

// DateLayout is the day-month-year format used on the invoice.
const DateLayout = "02-01-2006"

// Composer builds invoices with fixed branding.
type Composer struct {
	branding Branding
}

// New builds a composer. branding is copied; later changes by the caller have no effect.
func New(branding Branding) *Composer {
	return &Composer{branding: branding}
}

// Branding returns the composer's branding.
func (c *Composer) Branding() Branding { return c.branding }

// Compose builds the invoice for a finalized snapshot.
// Returns domain.ErrNotFinalized while the booking can still change.
func (c *Composer) Compose(snap ledger.Snapshot) (*Invoice, error) {
	if !snap.Finalized {
		return nil, domain.ErrNotFinalized
	}
	b := c.branding
	inv := &Invoice{
		Header: HeaderBlock{
			CompanyName: b.CompanyName,
			Tagline:     b.Tagline,
			Badge:       b.Badge,
		},
		Customer: CustomerBlock{
			Name:          snap.Customer.Name,
			ContactNo:     snap.Customer.ContactNo,
			Address:       snap.Customer.Address,
			InvoiceNumber: snap.Invoice.Number,
			Date:          snap.Invoice.Date,
			DateText:      snap.Invoice.Date.Format(DateLayout),
		},
		Totals: TotalsBlock{
			FlightSubtotal: snap.FlightSubtotal,
			CarSubtotal:    snap.CarSubtotal,
			GrandTotal:     snap.GrandTotal(),
			TaxRate:        b.TaxRateLabel,
		},
		Payment: PaymentBlock{
			AccountNo:   snap.Invoice.Number,
			AccountName: b.CompanyName,
			BankName:    b.BankName,
		},
		Footer: FooterBlock{
			ThankYou: b.ThankYouLine,
			Address:  b.AddressLine,
			Contact:  b.ContactLine,
		},
		Version:  snap.Version,
		Branding: b,
	}

	if len(snap.Flights) > 0 {
		sec := &FlightSection{Rows: make([]FlightRow, 0, len(snap.Flights)), Subtotal: snap.FlightSubtotal}
		for _, f := range snap.Flights {
			sec.Rows = append(sec.Rows, FlightRow{
				PNR:         f.PNR,
				Source:      f.Source,
				Destination: f.Destination,
				Passengers:  f.Passengers,
				Fare:        f.Fare,
			})
		}
		inv.Flights = sec
	}
	if len(snap.Cars) > 0 {
		sec := &CarSection{Rows: make([]CarRow, 0, len(snap.Cars)), Subtotal: snap.CarSubtotal}
		for _, car := range snap.Cars {
			sec.Rows = append(sec.Rows, CarRow{
				CarNo:       car.CarNo,
				Source:      car.Source,
				Destination: car.Destination,
				Fare:        car.Fare,
			})
		}
		inv.Cars = sec
	}
	return inv, nil
}

// safeName keeps an operator-typed invoice number usable as a file name.
func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "draft"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, s)
}
