package billing

import (
	"context"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
)

// InvoicePDFGenerator renders a composed invoice as a single PDF document.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *composer.Invoice) ([]byte, error)
}

// InvoiceTextRenderer renders a composed invoice as plain text (screen preview and print).
type InvoiceTextRenderer interface {
	RenderText(invoice *composer.Invoice) (string, error)
}

// OutputStore commits a finished rendering to path. A failed commit must leave
// nothing at path; the returned path is where the output now lives.
type OutputStore interface {
	Commit(ctx context.Context, path string, data []byte) (string, error)
}

// InvoiceSource supplies the finalized invoice (the booking console).
type InvoiceSource interface {
	GetComposedInvoice(ctx context.Context) (*composer.Invoice, error)
}
