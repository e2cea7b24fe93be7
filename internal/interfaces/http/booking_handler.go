package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/booking"
	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
)

// BookingHandler drives the booking session: customer, flights, cars.
type BookingHandler struct {
	uc *booking.ConsoleUseCase
}

// NewBookingHandler builds the handler.
func NewBookingHandler(uc *booking.ConsoleUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// NewSession godoc
// @Summary      Start a new booking
// @Description  Discards the active booking and opens an empty session
// @Tags         session
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Router       /api/session [post]
func (h *BookingHandler) NewSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.NewSession(c.Context()))
}

// Session godoc
// @Summary      Active booking state
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *BookingHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.uc.Session(c.Context()))
}

// SubmitCustomer godoc
// @Summary      Submit customer and invoice header
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CustomerRequest  true  "Customer details"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/session/customer [post]
func (h *BookingHandler) SubmitCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SubmitCustomer(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubmitFlights godoc
// @Summary      Submit the flight rows
// @Description  All rows are validated first; one bad row rejects the whole batch
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FlightBatchRequest  true  "Flight rows"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/session/flights [post]
func (h *BookingHandler) SubmitFlights(c *fiber.Ctx) error {
	var in dto.FlightBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SubmitFlightBatch(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SkipFlights godoc
// @Summary      Skip flights and finalize the booking
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/session/flights/skip [post]
func (h *BookingHandler) SkipFlights(c *fiber.Ctx) error {
	out, err := h.uc.SkipFlights(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubmitCars godoc
// @Summary      Submit the car rows and finalize the booking
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CarBatchRequest  true  "Car rows"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/session/cars [post]
func (h *BookingHandler) SubmitCars(c *fiber.Ctx) error {
	var in dto.CarBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SubmitCarBatch(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SkipCars godoc
// @Summary      Skip cars and finalize the booking
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/session/cars/skip [post]
func (h *BookingHandler) SkipCars(c *fiber.Ctx) error {
	out, err := h.uc.SkipCars(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
