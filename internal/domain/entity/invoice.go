package entity

import "time"

// InvoiceMeta is the invoice header entered by the operator.
// Number is free text; uniqueness is not enforced anywhere.
type InvoiceMeta struct {
	Number string
	Date   time.Time
}
