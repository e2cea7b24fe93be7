// Package textrender renders the composed invoice as plain text for the screen
// preview and the print spool.
package textrender

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/pkg/money"
)

// Renderer implements billing.InvoiceTextRenderer.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// RenderText renders the sections of inv in order. Amounts use the branding's
// currency symbol and locale grouping.
func (r *Renderer) RenderText(inv *composer.Invoice) (string, error) {
	if inv == nil {
		return "", fmt.Errorf("textrender: nil invoice")
	}
	f := money.NewFormatter(inv.Branding.Locale, inv.Branding.CurrencySymbol)
	var sb strings.Builder

	for _, s := range inv.Sections() {
		var err error
		switch s {
		case composer.SectionHeader:
			fmt.Fprintf(&sb, "%s\n%s\n\n", inv.Header.CompanyName, inv.Header.Tagline)
		case composer.SectionCustomer:
			c := inv.Customer
			sb.WriteString("Customer Information:\n")
			fmt.Fprintf(&sb, "Customer Name: %s\n", c.Name)
			fmt.Fprintf(&sb, "Contact Number: %s\n", c.ContactNo)
			fmt.Fprintf(&sb, "Address: %s\n", c.Address)
			fmt.Fprintf(&sb, "Invoice Number: %s\n", c.InvoiceNumber)
			fmt.Fprintf(&sb, "Date: %s\n\n", c.DateText)
		case composer.SectionFlights:
			err = writeFlights(&sb, inv.Flights, f)
		case composer.SectionCars:
			err = writeCars(&sb, inv.Cars, f)
		case composer.SectionTotals:
			fmt.Fprintf(&sb, "Grand Total: %s\n\n", f.Whole(inv.Totals.GrandTotal))
		case composer.SectionPayment:
			p := inv.Payment
			fmt.Fprintf(&sb, "Payment: Account No %s | %s | %s\n\n", p.AccountNo, p.AccountName, p.BankName)
		case composer.SectionFooter:
			fmt.Fprintf(&sb, "%s\n%s\n%s\n", inv.Footer.ThankYou, inv.Footer.Address, inv.Footer.Contact)
		}
		if err != nil {
			return "", fmt.Errorf("textrender: %s: %w", s, err)
		}
	}
	return sb.String(), nil
}

func writeFlights(sb *strings.Builder, sec *composer.FlightSection, f *money.Formatter) error {
	sb.WriteString("Flight Bookings:\n")
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PNR\tFrom\tTo\tPassengers\tFare")
	for _, r := range sec.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.PNR, r.Source, r.Destination, r.Passengers, f.Plain(r.Fare))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(sb, "Total Airfare: %s\n\n", f.Whole(sec.Subtotal))
	return nil
}

func writeCars(sb *strings.Builder, sec *composer.CarSection, f *money.Formatter) error {
	sb.WriteString("Car Bookings:\n")
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Car Number\tFrom\tTo\tFare")
	for _, r := range sec.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.CarNo, r.Source, r.Destination, f.Plain(r.Fare))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(sb, "Total Carfare: %s\n\n", f.Whole(sec.Subtotal))
	return nil
}
