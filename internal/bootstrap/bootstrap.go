// Package bootstrap wires the use cases both entry points share.
package bootstrap

import (
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/tour-invoice-desk/internal/application/billing"
	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/tour-invoice-desk/internal/infrastructure/pdf"
	"github.com/jhoicas/tour-invoice-desk/internal/infrastructure/textrender"
	"github.com/jhoicas/tour-invoice-desk/pkg/config"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// Services the application layer built from configuration.
type Services struct {
	Console *booking.ConsoleUseCase
	Output  *billing.InvoiceOutputUseCase
}

// New builds the booking console and the output use case over fs.
func New(cfg *config.Config, log *logger.Logger, fs afero.Fs, now func() time.Time) *Services {
	console := booking.NewConsoleUseCase(composer.New(Branding(cfg.Branding)), log, now)
	output := billing.NewInvoiceOutputUseCase(
		console,
		infrapdf.NewMarotoPDFGenerator(),
		textrender.NewRenderer(),
		filestore.New(fs),
		billing.OutputConfig{ExportDir: cfg.Output.ExportDir, SpoolDir: cfg.Output.SpoolDir},
		log,
	)
	return &Services{Console: console, Output: output}
}

// Branding converts the configured branding into the composer's immutable value.
func Branding(b config.BrandingConfig) composer.Branding {
	return composer.Branding{
		CompanyName:    b.CompanyName,
		Tagline:        b.Tagline,
		Badge:          b.Badge,
		AddressLine:    b.AddressLine,
		ContactLine:    b.ContactLine,
		ThankYouLine:   b.ThankYouLine,
		BankName:       b.BankName,
		UPIHandle:      b.UPIHandle,
		CurrencySymbol: b.CurrencySymbol,
		Locale:         b.Locale,
		TaxRateLabel:   b.TaxRateLabel,
		PrimaryColor:   composer.RGB{R: b.PrimaryColor[0], G: b.PrimaryColor[1], B: b.PrimaryColor[2]},
		AccentColor:    composer.RGB{R: b.AccentColor[0], G: b.AccentColor[1], B: b.AccentColor[2]},
		FontFamily:     b.FontFamily,
		FontSize:       b.FontSize,
		PageSize:       b.PageSize,
	}
}
