package validation

import (
	"fmt"
	"strings"

	"github.com/jhoicas/tour-invoice-desk/internal/domain"
)

// Field names reported in FieldError.
const (
	FieldName          = "name"
	FieldContactNo     = "contact_no"
	FieldAddress       = "address"
	FieldInvoiceNumber = "invoice_number"
	FieldDate          = "date"
	FieldPNR           = "pnr"
	FieldCarNo         = "car_no"
	FieldSource        = "source"
	FieldDestination   = "destination"
	FieldFare          = "fare"
	FieldPassengers    = "passengers"
	FieldRows          = "rows"
)

// Reasons reported in FieldError.
const (
	ReasonRequired   = "required"
	ReasonNotInteger = "must be a whole number"
	ReasonNegative   = "must not be negative"
	ReasonTooLarge   = "must not exceed 1000000000000"
	ReasonBelowOne   = "must be at least 1"
	ReasonBadDate    = "must be a date in YYYY-MM-DD format"
	ReasonEmptyBatch = "at least one row is required"
)

// FieldError one rejected field.
type FieldError struct {
	Field  string
	Reason string
}

// Error rejects a single record. Row is 1-based inside a batch and zero otherwise.
type Error struct {
	Row    int
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, strings.Join(parts, ", "))
	}
	return strings.Join(parts, ", ")
}

// Unwrap lets errors.Is(err, domain.ErrInvalidInput) match.
func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Has reports whether field was rejected.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// BatchError rejects a whole batch; Rows lists every failing row in order.
type BatchError struct {
	Kind string // "flight" or "car"
	Rows []*Error
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		parts = append(parts, r.Error())
	}
	return fmt.Sprintf("%s batch rejected: %s", e.Kind, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, domain.ErrInvalidInput) match.
func (e *BatchError) Unwrap() error { return domain.ErrInvalidInput }

// RowNumbers returns the 1-based numbers of the failing rows.
func (e *BatchError) RowNumbers() []int {
	out := make([]int, 0, len(e.Rows))
	for _, r := range e.Rows {
		out = append(out, r.Row)
	}
	return out
}

type collector struct {
	fields []FieldError
}

func (c *collector) add(field, reason string) {
	c.fields = append(c.fields, FieldError{Field: field, Reason: reason})
}

func (c *collector) err(row int) error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Row: row, Fields: c.fields}
}
