package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/billing"
	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
)

// InvoiceHandler serves the finalized invoice in every medium.
type InvoiceHandler struct {
	booking *booking.ConsoleUseCase
	output  *billing.InvoiceOutputUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(bookingUC *booking.ConsoleUseCase, output *billing.InvoiceOutputUseCase) *InvoiceHandler {
	return &InvoiceHandler{booking: bookingUC, output: output}
}

// Get godoc
// @Summary      Composed invoice
// @Description  Ordered invoice sections of the finalized booking
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  composer.Invoice
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoice [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	inv, err := h.booking.GetComposedInvoice(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(inv)
}

// Preview godoc
// @Summary      Text preview of the invoice
// @Tags         invoice
// @Produce      plain
// @Success      200  {string}  string
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoice/preview [get]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	text, err := h.output.Preview(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// DownloadPDF godoc
// @Summary      Download the invoice PDF
// @Tags         invoice
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoice/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.output.DownloadInvoicePDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// Export godoc
// @Summary      Save the invoice PDF
// @Description  Empty path saves Invoice_<number>.pdf in the export directory
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ExportRequest  false  "Target path"
// @Success      201   {object}  dto.OutputResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/invoice/export [post]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	path, err := h.output.ExportPDF(c.Context(), in.Path)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OutputResponse{Path: path})
}

// Print godoc
// @Summary      Send the invoice text to the print spool
// @Tags         invoice
// @Produce      json
// @Success      201  {object}  dto.OutputResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoice/print [post]
func (h *InvoiceHandler) Print(c *fiber.Ctx) error {
	path, err := h.output.Print(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OutputResponse{Path: path})
}
