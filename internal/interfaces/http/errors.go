package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/internal/application/validation"
	"github.com/jhoicas/tour-invoice-desk/internal/domain"
)

// writeError maps use case errors to a status code and dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var batchErr *validation.BatchError
	var rowErr *validation.Error

	switch {
	case errors.As(err, &batchErr):
		details := make([]dto.FieldIssue, 0)
		for _, r := range batchErr.Rows {
			details = append(details, fieldIssues(r)...)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error(), Details: details})
	case errors.As(err, &rowErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error(), Details: fieldIssues(rowErr)})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrOutOfOrder):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_ORDER", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_FINALIZED", Message: "booking is not finalized yet"})
	case errors.Is(err, domain.ErrBookingFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FINALIZED", Message: "booking is already finalized"})
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func fieldIssues(e *validation.Error) []dto.FieldIssue {
	out := make([]dto.FieldIssue, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, dto.FieldIssue{Row: e.Row, Field: f.Field, Reason: f.Reason})
	}
	return out
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}
