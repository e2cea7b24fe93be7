package composer

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectionKind names one block of a composed invoice.
type SectionKind string

const (
	SectionHeader   SectionKind = "header"
	SectionCustomer SectionKind = "customer"
	SectionFlights  SectionKind = "flights"
	SectionCars     SectionKind = "cars"
	SectionTotals   SectionKind = "totals"
	SectionPayment  SectionKind = "payment"
	SectionFooter   SectionKind = "footer"
)

// Invoice is the medium-independent invoice. Screen preview, print and PDF export
// all render this value, so they can only differ in presentation.
type Invoice struct {
	Header   HeaderBlock    `json:"header"`
	Customer CustomerBlock  `json:"customer"`
	Flights  *FlightSection `json:"flights,omitempty"`
	Cars     *CarSection    `json:"cars,omitempty"`
	Totals   TotalsBlock    `json:"totals"`
	Payment  PaymentBlock   `json:"payment"`
	Footer   FooterBlock    `json:"footer"`
	Version  int            `json:"version"`
	Branding Branding       `json:"-"`
}

type HeaderBlock struct {
	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline"`
	Badge       string `json:"badge"`
}

type CustomerBlock struct {
	Name          string    `json:"name"`
	ContactNo     string    `json:"contact_no"`
	Address       string    `json:"address"`
	InvoiceNumber string    `json:"invoice_number"`
	Date          time.Time `json:"-"`
	DateText      string    `json:"date"` // dd-mm-yyyy
}

type FlightRow struct {
	PNR         string `json:"pnr"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Passengers  int    `json:"passengers"`
	Fare        int64  `json:"fare"`
}

type FlightSection struct {
	Rows     []FlightRow `json:"rows"`
	Subtotal int64       `json:"subtotal"`
}

type CarRow struct {
	CarNo       string `json:"car_no"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Fare        int64  `json:"fare"`
}

type CarSection struct {
	Rows     []CarRow `json:"rows"`
	Subtotal int64    `json:"subtotal"`
}

type TotalsBlock struct {
	FlightSubtotal int64  `json:"flight_subtotal"`
	CarSubtotal    int64  `json:"car_subtotal"`
	GrandTotal     int64  `json:"grand_total"`
	TaxRate        string `json:"tax_rate"`
}

// PaymentBlock mirrors the payment details printed on the agency's invoices,
// where the account number field carries the invoice number.
type PaymentBlock struct {
	AccountNo   string `json:"account_no"`
	AccountName string `json:"account_name"`
	BankName    string `json:"bank_name"`
}

type FooterBlock struct {
	ThankYou string `json:"thank_you"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}

// ItemLine is one "price x quantity" line for renderers that itemize.
type ItemLine struct {
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Amount      int64
}

// Sections lists the blocks present, in render order.
func (inv *Invoice) Sections() []SectionKind {
	out := []SectionKind{SectionHeader, SectionCustomer}
	if inv.Flights != nil {
		out = append(out, SectionFlights)
	}
	if inv.Cars != nil {
		out = append(out, SectionCars)
	}
	return append(out, SectionTotals, SectionPayment, SectionFooter)
}

// Itemized flattens flights then cars into price x quantity lines.
// Flight unit price is fare / passengers; cars are always quantity 1.
func (inv *Invoice) Itemized() []ItemLine {
	var lines []ItemLine
	if inv.Flights != nil {
		for _, f := range inv.Flights.Rows {
			passengers := f.Passengers
			if passengers < 1 {
				passengers = 1
			}
			lines = append(lines, ItemLine{
				Description: "Flight: " + f.Source + " to " + f.Destination + " (PNR: " + f.PNR + ")",
				UnitPrice:   decimal.NewFromInt(f.Fare).Div(decimal.NewFromInt(int64(passengers))),
				Quantity:    passengers,
				Amount:      f.Fare,
			})
		}
	}
	if inv.Cars != nil {
		for _, c := range inv.Cars.Rows {
			lines = append(lines, ItemLine{
				Description: "Car: " + c.Source + " to " + c.Destination + " (Car No: " + c.CarNo + ")",
				UnitPrice:   decimal.NewFromInt(c.Fare),
				Quantity:    1,
				Amount:      c.Fare,
			})
		}
	}
	return lines
}

// DefaultFilename is the suggested export name for the given extension ("pdf", "txt").
func (inv *Invoice) DefaultFilename(ext string) string {
	return "Invoice_" + safeName(inv.Customer.InvoiceNumber) + "." + ext
}
