package billing

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/domain"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// Medium selects where an invoice is rendered.
type Medium string

const (
	MediumScreen  Medium = "screen"
	MediumPrinter Medium = "printer"
	MediumFile    Medium = "file"
)

// OutputConfig default locations for committed output.
type OutputConfig struct {
	ExportDir string // PDF exports without an explicit path
	SpoolDir  string // print jobs
}

// RenderResult is what a render produced: Text for the screen, Path for printer and file.
type RenderResult struct {
	Medium Medium
	Text   string
	Path   string
}

// InvoiceOutputUseCase renders the finalized invoice to screen, printer or file.
// The booking itself is never modified here; every failure wraps domain.ErrRender
// except a booking that is not finalized yet (domain.ErrNotFinalized).
type InvoiceOutputUseCase struct {
	source    InvoiceSource
	generator InvoicePDFGenerator
	text      InvoiceTextRenderer
	store     OutputStore
	cfg       OutputConfig
	log       *logger.Logger
}

// NewInvoiceOutputUseCase builds the use case injecting all of its ports.
func NewInvoiceOutputUseCase(
	source InvoiceSource,
	generator InvoicePDFGenerator,
	text InvoiceTextRenderer,
	store OutputStore,
	cfg OutputConfig,
	log *logger.Logger,
) *InvoiceOutputUseCase {
	return &InvoiceOutputUseCase{
		source:    source,
		generator: generator,
		text:      text,
		store:     store,
		cfg:       cfg,
		log:       log.Named("invoice_output"),
	}
}

// Render dispatches on medium. target is the file path for MediumFile (empty = default name).
func (uc *InvoiceOutputUseCase) Render(ctx context.Context, medium Medium, target string) (*RenderResult, error) {
	switch medium {
	case MediumScreen:
		text, err := uc.Preview(ctx)
		if err != nil {
			return nil, err
		}
		return &RenderResult{Medium: medium, Text: text}, nil
	case MediumPrinter:
		path, err := uc.Print(ctx)
		if err != nil {
			return nil, err
		}
		return &RenderResult{Medium: medium, Path: path}, nil
	case MediumFile:
		path, err := uc.ExportPDF(ctx, target)
		if err != nil {
			return nil, err
		}
		return &RenderResult{Medium: medium, Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: unknown medium %q", domain.ErrInvalidInput, medium)
	}
}

// Preview returns the text rendering shown on screen.
func (uc *InvoiceOutputUseCase) Preview(ctx context.Context) (string, error) {
	inv, err := uc.source.GetComposedInvoice(ctx)
	if err != nil {
		return "", err
	}
	text, err := uc.text.RenderText(inv)
	if err != nil {
		return "", uc.fail(inv, MediumScreen, fmt.Errorf("%w: text: %w", domain.ErrRender, err))
	}
	return text, nil
}

// Print commits the text rendering to the spool directory as print_<invoice>.txt.
func (uc *InvoiceOutputUseCase) Print(ctx context.Context) (string, error) {
	inv, err := uc.source.GetComposedInvoice(ctx)
	if err != nil {
		return "", err
	}
	text, err := uc.text.RenderText(inv)
	if err != nil {
		return "", uc.fail(inv, MediumPrinter, fmt.Errorf("%w: text: %w", domain.ErrRender, err))
	}
	target := filepath.Join(uc.cfg.SpoolDir, "print_"+inv.DefaultFilename("txt"))
	path, err := uc.store.Commit(ctx, target, []byte(text))
	if err != nil {
		return "", uc.fail(inv, MediumPrinter, fmt.Errorf("%w: spool: %w", domain.ErrRender, err))
	}
	uc.log.Info().Str("invoice", inv.Customer.InvoiceNumber).Str("path", path).Msg("invoice spooled for printing")
	return path, nil
}

// ExportPDF commits the PDF to path, or to Invoice_<number>.pdf in the export directory.
func (uc *InvoiceOutputUseCase) ExportPDF(ctx context.Context, path string) (string, error) {
	pdfBytes, inv, err := uc.generate(ctx)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(uc.cfg.ExportDir, inv.DefaultFilename("pdf"))
	}
	saved, err := uc.store.Commit(ctx, path, pdfBytes)
	if err != nil {
		return "", uc.fail(inv, MediumFile, fmt.Errorf("%w: save pdf: %w", domain.ErrRender, err))
	}
	uc.log.Info().Str("invoice", inv.Customer.InvoiceNumber).Str("path", saved).Int("bytes", len(pdfBytes)).Msg("invoice pdf saved")
	return saved, nil
}

// DownloadInvoicePDF returns the PDF bytes and the suggested file name.
func (uc *InvoiceOutputUseCase) DownloadInvoicePDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	pdfBytes, inv, err := uc.generate(ctx)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, inv.DefaultFilename("pdf"), nil
}

func (uc *InvoiceOutputUseCase) generate(ctx context.Context) ([]byte, *composer.Invoice, error) {
	inv, err := uc.source.GetComposedInvoice(ctx)
	if err != nil {
		return nil, nil, err
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, nil, uc.fail(inv, MediumFile, fmt.Errorf("%w: pdf: %w", domain.ErrRender, err))
	}
	return pdfBytes, inv, nil
}

func (uc *InvoiceOutputUseCase) fail(inv *composer.Invoice, medium Medium, err error) error {
	uc.log.Error().Err(err).Str("invoice", inv.Customer.InvoiceNumber).Str("medium", string(medium)).Msg("invoice render failed")
	return err
}
