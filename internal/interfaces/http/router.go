package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/billing"
	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	BookingUC *booking.ConsoleUseCase
	OutputUC  *billing.InvoiceOutputUseCase
	Log       *logger.Logger
}

// Router registers the operator console routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.Log != nil {
		api.Use(RequestLogger(deps.Log))
	}

	// Booking session
	sess := api.Group("/session")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	sess.Post("/", bookingHandler.NewSession)
	sess.Get("/", bookingHandler.Session)
	sess.Post("/customer", bookingHandler.SubmitCustomer)
	sess.Post("/flights", bookingHandler.SubmitFlights)
	sess.Post("/flights/skip", bookingHandler.SkipFlights)
	sess.Post("/cars", bookingHandler.SubmitCars)
	sess.Post("/cars/skip", bookingHandler.SkipCars)

	// Invoice output
	inv := api.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.BookingUC, deps.OutputUC)
	inv.Get("/", invoiceHandler.Get)
	inv.Get("/preview", invoiceHandler.Preview)
	inv.Get("/pdf", invoiceHandler.DownloadPDF)
	inv.Post("/export", invoiceHandler.Export)
	inv.Post("/print", invoiceHandler.Print)
}
