// Package validation turns raw operator input into typed booking records.
//
// Every submission is validated in full before anything reaches the ledger:
// a batch with one bad row commits nothing and reports every bad row.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/internal/domain/entity"
)

// DateLayout is the accepted invoice date input format.
const DateLayout = "2006-01-02"

// CustomerDetails is the validated output of the customer screen.
type CustomerDetails struct {
	Customer entity.Customer
	Invoice  entity.InvoiceMeta
}

// Validator validates operator submissions. The zero value uses time.Now for the default date.
type Validator struct {
	now func() time.Time
}

// NewValidator builds a validator; now supplies the default invoice date.
func NewValidator(now func() time.Time) *Validator {
	return &Validator{now: now}
}

func (v *Validator) today() time.Time {
	if v == nil || v.now == nil {
		return time.Now()
	}
	return v.now()
}

// Customer validates the customer and invoice header fields.
func (v *Validator) Customer(in dto.CustomerRequest) (CustomerDetails, error) {
	var c collector
	name := required(&c, FieldName, in.Name)
	contact := required(&c, FieldContactNo, in.ContactNo)
	address := required(&c, FieldAddress, in.Address)
	number := required(&c, FieldInvoiceNumber, in.InvoiceNumber)

	date := v.today()
	if raw := strings.TrimSpace(in.Date); raw != "" {
		parsed, err := time.ParseInLocation(DateLayout, raw, date.Location())
		if err != nil {
			c.add(FieldDate, ReasonBadDate)
		} else {
			date = parsed
		}
	}
	if err := c.err(0); err != nil {
		return CustomerDetails{}, err
	}
	return CustomerDetails{
		Customer: entity.Customer{Name: name, ContactNo: contact, Address: address},
		Invoice:  entity.InvoiceMeta{Number: number, Date: date},
	}, nil
}

// FlightRow validates one flight row. row is the 1-based position reported on failure.
func (v *Validator) FlightRow(row int, in dto.FlightRowRequest) (entity.FlightLineItem, error) {
	var c collector
	item := entity.FlightLineItem{
		PNR:         required(&c, FieldPNR, in.PNR),
		Source:      required(&c, FieldSource, in.Source),
		Destination: required(&c, FieldDestination, in.Destination),
		Fare:        fare(&c, in.Fare),
		Passengers:  passengers(&c, in.Passengers),
	}
	if err := c.err(row); err != nil {
		return entity.FlightLineItem{}, err
	}
	return item, nil
}

// CarRow validates one car row. row is the 1-based position reported on failure.
func (v *Validator) CarRow(row int, in dto.CarRowRequest) (entity.CarLineItem, error) {
	var c collector
	item := entity.CarLineItem{
		CarNo:       required(&c, FieldCarNo, in.CarNo),
		Source:      required(&c, FieldSource, in.Source),
		Destination: required(&c, FieldDestination, in.Destination),
		Fare:        fare(&c, in.Fare),
	}
	if err := c.err(row); err != nil {
		return entity.CarLineItem{}, err
	}
	return item, nil
}

// FlightBatch validates every row; on any failure no items are returned.
func (v *Validator) FlightBatch(rows []dto.FlightRowRequest) ([]entity.FlightLineItem, error) {
	if len(rows) == 0 {
		return nil, emptyBatch("flight")
	}
	items := make([]entity.FlightLineItem, 0, len(rows))
	batch := &BatchError{Kind: "flight"}
	for i, r := range rows {
		item, err := v.FlightRow(i+1, r)
		if err != nil {
			batch.add(err)
			continue
		}
		items = append(items, item)
	}
	if len(batch.Rows) > 0 {
		return nil, batch
	}
	return items, nil
}

// CarBatch validates every row; on any failure no items are returned.
func (v *Validator) CarBatch(rows []dto.CarRowRequest) ([]entity.CarLineItem, error) {
	if len(rows) == 0 {
		return nil, emptyBatch("car")
	}
	items := make([]entity.CarLineItem, 0, len(rows))
	batch := &BatchError{Kind: "car"}
	for i, r := range rows {
		item, err := v.CarRow(i+1, r)
		if err != nil {
			batch.add(err)
			continue
		}
		items = append(items, item)
	}
	if len(batch.Rows) > 0 {
		return nil, batch
	}
	return items, nil
}

func (b *BatchError) add(err error) {
	var rowErr *Error
	if errors.As(err, &rowErr) {
		b.Rows = append(b.Rows, rowErr)
	}
}

func emptyBatch(kind string) error {
	return &BatchError{Kind: kind, Rows: []*Error{{
		Fields: []FieldError{{Field: FieldRows, Reason: ReasonEmptyBatch}},
	}}}
}

// ── field rules ───────────────────────────────────────────────────────────────

func required(c *collector, field, raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.add(field, ReasonRequired)
	}
	return s
}

func fare(c *collector, raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		c.add(FieldFare, ReasonRequired)
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-"):
		c.add(FieldFare, ReasonNegative)
		return 0
	case errors.Is(err, strconv.ErrRange):
		c.add(FieldFare, ReasonTooLarge)
		return 0
	case err != nil:
		c.add(FieldFare, ReasonNotInteger)
		return 0
	case n < 0:
		c.add(FieldFare, ReasonNegative)
		return 0
	case n > entity.MaxFare:
		c.add(FieldFare, ReasonTooLarge)
		return 0
	}
	return n
}

func passengers(c *collector, raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return entity.DefaultPassengers
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.add(FieldPassengers, ReasonNotInteger)
		return 0
	}
	if n < 1 {
		c.add(FieldPassengers, ReasonBelowOne)
		return 0
	}
	return n
}
