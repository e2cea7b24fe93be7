// Package pdf renders the composed travel invoice as a one-page PDF.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BADGE + company name        │  INVOICE TO: name / address  │
//	│                              │  Invoice No. / Date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: ITEM DESCRIPTION | PRICE | QTY. | TOTAL             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Subtotal / Tax Rate / TOTAL                                │
//	│  PAYMENT INFORMATION          │  (UPI QR)  Authorised Sign  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: thank-you line, address, contact                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/pkg/money"
)

var (
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the document bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *composer.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("pdf: nil invoice")
	}
	b := inv.Branding
	l := newLayout(b)

	cfg := config.NewBuilder().
		WithPageSize(pageSize(b.PageSize)).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: fontFamily(b.FontFamily), Size: fontSize(b.FontSize)}).
		WithTitle(metaText("Invoice " + inv.Customer.InvoiceNumber)).
		WithSubject(metaText(inv.Customer.Name + " - Total " + l.money.Fixed2(decimalOf(inv.Totals.GrandTotal)))).
		WithAuthor(metaText(inv.Header.CompanyName)).
		Build()

	m := maroto.New(cfg)

	m.AddRows(l.headerRow(inv))
	m.AddRows(line.NewRow(4, props.Line{Color: l.primary, Thickness: 0.6}))

	m.AddRows(l.tableHeaderRow())
	m.AddRows(l.itemRows(inv.Itemized())...)
	m.AddRows(line.NewRow(3, props.Line{Color: l.primary, Thickness: 0.3}))

	m.AddRows(l.totalsRow(inv))
	m.AddRows(line.NewRow(4))
	m.AddRows(l.paymentRow(inv))

	m.AddRows(line.NewRow(6, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(l.footerRows(inv.Footer)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

type layout struct {
	primary *props.Color
	accent  *props.Color
	money   *money.Formatter
	upi     string
}

func newLayout(b composer.Branding) *layout {
	return &layout{
		primary: toColor(b.PrimaryColor),
		accent:  toColor(b.AccentColor),
		money:   money.NewFormatter(b.Locale, b.CurrencySymbol),
		upi:     b.UPIHandle,
	}
}

// headerRow: badge + company (left), invoice-to block (right).
func (l *layout) headerRow(inv *composer.Invoice) core.Row {
	c := inv.Customer
	return row.New(30).Add(
		col.New(6).Add(
			text.New(inv.Header.Badge, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: l.accent, Top: 2,
			}),
			text.New(inv.Header.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: l.primary, Top: 7,
			}),
			text.New(inv.Header.Tagline, props.Text{
				Style: fontstyle.Italic, Size: 8, Color: colorGray, Top: 15,
			}),
		),
		col.New(6).Add(
			text.New("INVOICE TO", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: l.primary, Top: 2,
			}),
			text.New("Name: "+c.Name, props.Text{Size: 9, Top: 8}),
			text.New("Address: "+c.Address, props.Text{Size: 9, Top: 13}),
			text.New("Invoice No.: "+c.InvoiceNumber, props.Text{Size: 9, Top: 19}),
			text.New("Date: "+c.DateText, props.Text{Size: 9, Top: 24}),
		),
	)
}

// tableHeaderRow: item table header on the primary color.
func (l *layout) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2.5, Left: 2, Right: 2,
		}))
	}
	return row.New(9).Add(
		h("ITEM DESCRIPTION", 6, align.Left),
		h("PRICE", 2, align.Right),
		h("QTY.", 1, align.Center),
		h("TOTAL", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: l.primary})
}

// itemRows: one row per flight then per car.
func (l *layout) itemRows(items []composer.ItemLine) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(8).Add(
			col.New(6).Add(text.New(it.Description, props.Text{
				Size: 8, Align: align.Left, Top: 2, Left: 2,
			})),
			col.New(2).Add(text.New(l.money.Fixed2(it.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 2, Right: 2,
			})),
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 2,
			})),
			col.New(3).Add(text.New(l.money.Fixed2(decimalOf(it.Amount)), props.Text{
				Size: 8, Align: align.Right, Top: 2, Right: 2,
			})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(text.New("No bookings", props.Text{
			Size: 8, Align: align.Center, Top: 2, Color: colorGray,
		}))))
	}
	return rows
}

// totalsRow: subtotal, tax rate and total aligned right.
func (l *layout) totalsRow(inv *composer.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	grand := l.money.Fixed2(decimalOf(inv.Totals.GrandTotal))

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal", 1),
			label("Tax Rate", 7),
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: l.primary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(grand, 1),
			value(inv.Totals.TaxRate, 7),
			text.New(grand, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: l.primary, Right: 2, Top: 14,
			}),
		),
	)
}

// paymentRow: payment details (left) and signature, with a UPI QR when configured.
func (l *layout) paymentRow(inv *composer.Invoice) core.Row {
	p := inv.Payment
	payment := col.New(6).Add(
		text.New("PAYMENT INFORMATION :", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: l.primary, Top: 1,
		}),
		text.New("Account No: "+p.AccountNo, props.Text{Size: 8, Top: 8}),
		text.New("Name: "+p.AccountName, props.Text{Size: 8, Top: 13}),
		text.New("Bank Detail: "+p.BankName, props.Text{Size: 8, Top: 18}),
	)
	sign := text.New("Authorised Sign", props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 24,
	})

	if l.upi == "" {
		return row.New(30).Add(payment, col.New(6).Add(sign))
	}
	return row.New(30).Add(
		payment,
		col.New(3).Add(code.NewQr(upiURI(l.upi, inv), props.Rect{Percent: 90, Center: true})),
		col.New(3).Add(sign),
	)
}

func (l *layout) footerRows(f composer.FooterBlock) []core.Row {
	centered := func(s string, style fontstyle.Type, c *props.Color) core.Row {
		return row.New(6).Add(col.New(12).Add(text.New(s, props.Text{
			Style: style, Size: 8, Align: align.Center, Color: c, Top: 1,
		})))
	}
	return []core.Row{
		centered(f.ThankYou, fontstyle.Bold, l.primary),
		centered(f.Address, fontstyle.Normal, colorGray),
		centered(f.Contact, fontstyle.Normal, colorGray),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// upiURI is the payment intent encoded in the QR code.
func upiURI(handle string, inv *composer.Invoice) string {
	q := url.Values{}
	q.Set("pa", handle)
	q.Set("pn", inv.Payment.AccountName)
	q.Set("am", fmt.Sprintf("%d.00", inv.Totals.GrandTotal))
	q.Set("cu", "INR")
	q.Set("tn", "Invoice "+inv.Customer.InvoiceNumber)
	return "upi://pay?" + q.Encode()
}

// metaText flags document info strings for UTF-16 encoding only when they need it.
func metaText(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return s, true
		}
	}
	return s, false
}

func decimalOf(amount int64) decimal.Decimal { return decimal.NewFromInt(amount) }

func toColor(c composer.RGB) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

var pageSizes = map[string]pagesize.Type{
	"a3":     pagesize.A3,
	"a4":     pagesize.A4,
	"a5":     pagesize.A5,
	"letter": pagesize.Letter,
	"legal":  pagesize.Legal,
}

// pageSize maps a configured name to a maroto page size, A4 when unknown.
func pageSize(name string) pagesize.Type {
	if ps, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return ps
	}
	return pagesize.A4
}

func fontFamily(f string) string {
	if f == "" {
		return "helvetica"
	}
	return strings.ToLower(f)
}

func fontSize(s float64) float64 {
	if s <= 0 {
		return 9
	}
	return s
}
