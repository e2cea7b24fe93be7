package ledger

import "github.com/jhoicas/tour-invoice-desk/internal/domain/entity"

// Snapshot is a point-in-time copy of a Booking. Its slices are owned by the snapshot.
type Snapshot struct {
	Customer       entity.Customer
	Invoice        entity.InvoiceMeta
	Flights        []entity.FlightLineItem
	Cars           []entity.CarLineItem
	FlightSubtotal int64
	CarSubtotal    int64
	Finalized      bool
	Version        int
}

// GrandTotal is FlightSubtotal + CarSubtotal.
func (s Snapshot) GrandTotal() int64 {
	return s.FlightSubtotal + s.CarSubtotal
}
