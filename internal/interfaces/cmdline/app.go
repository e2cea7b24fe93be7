// Package cmdline is the headless entry point: it replays booking files through the
// booking console and renders the invoice without the HTTP console.
package cmdline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/billing"
	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/internal/application/validation"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// ErrCarsWithoutFlights: skipping flights finalizes the booking, so cars can only follow flights.
var ErrCarsWithoutFlights = errors.New("cars need at least one flight: skipping flights finalizes the booking")

// Deps what the commands run against.
type Deps struct {
	Console *booking.ConsoleUseCase
	Output  *billing.InvoiceOutputUseCase
	Fs      afero.Fs
	Log     *logger.Logger
}

// NewApp builds the invoicectl command tree. Human output goes to out.
func NewApp(deps Deps, out io.Writer) *cli.App {
	fileFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "booking file (YAML)",
			Required: true,
		}
	}
	return &cli.App{
		Name:   "invoicectl",
		Usage:  "validate and render travel invoices from booking files",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "check a booking file and print its totals",
				Flags: []cli.Flag{fileFlag()},
				Action: func(c *cli.Context) error {
					view, err := replay(c.Context, deps, c.String("file"), out)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "ok: invoice %s, %d flight(s), %d car(s), airfare %d, carfare %d, grand total %d\n",
						view.InvoiceNumber, view.FlightCount, view.CarCount,
						view.FlightSubtotal, view.CarSubtotal, view.GrandTotal)
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "render the invoice of a booking file",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.StringFlag{
						Name:    "medium",
						Aliases: []string{"m"},
						Usage:   "screen, printer or file",
						Value:   string(billing.MediumScreen),
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "PDF path for --medium file (default Invoice_<number>.pdf in the export directory)",
					},
				},
				Action: func(c *cli.Context) error {
					if _, err := replay(c.Context, deps, c.String("file"), out); err != nil {
						return err
					}
					res, err := deps.Output.Render(c.Context, billing.Medium(c.String("medium")), c.String("out"))
					if err != nil {
						return err
					}
					if res.Text != "" {
						fmt.Fprint(out, res.Text)
						return nil
					}
					fmt.Fprintln(out, res.Path)
					return nil
				},
			},
		},
	}
}

// replay drives a fresh session through the file's steps.
func replay(ctx context.Context, deps Deps, path string, out io.Writer) (dto.SessionResponse, error) {
	bf, err := LoadBookingFile(deps.Fs, path)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	if len(bf.Flights) == 0 && len(bf.Cars) > 0 {
		return dto.SessionResponse{}, ErrCarsWithoutFlights
	}

	uc := deps.Console
	uc.NewSession(ctx)
	view, err := uc.SubmitCustomer(ctx, bf.customerRequest())
	if err != nil {
		return view, report(out, "customer", err)
	}

	if len(bf.Flights) == 0 {
		view, err = uc.SkipFlights(ctx)
		return view, err
	}
	if view, err = uc.SubmitFlightBatch(ctx, bf.flightBatch()); err != nil {
		return view, report(out, "flights", err)
	}

	if len(bf.Cars) == 0 {
		view, err = uc.SkipCars(ctx)
		return view, err
	}
	if view, err = uc.SubmitCarBatch(ctx, bf.carBatch()); err != nil {
		return view, report(out, "cars", err)
	}
	deps.Log.Debug().Str("file", path).Str("invoice", view.InvoiceNumber).Msg("booking file replayed")
	return view, nil
}

// report lists every rejected field, one per line, before returning err.
func report(out io.Writer, step string, err error) error {
	var batchErr *validation.BatchError
	var rowErr *validation.Error
	switch {
	case errors.As(err, &batchErr):
		for _, r := range batchErr.Rows {
			for _, f := range r.Fields {
				fmt.Fprintf(out, "%s row %d: %s %s\n", step, r.Row, f.Field, f.Reason)
			}
		}
	case errors.As(err, &rowErr):
		for _, f := range rowErr.Fields {
			fmt.Fprintf(out, "%s: %s %s\n", step, f.Field, f.Reason)
		}
	}
	return fmt.Errorf("%s: %w", step, err)
}
