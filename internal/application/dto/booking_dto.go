package dto

// CustomerRequest body for POST /api/session/customer.
// Date is YYYY-MM-DD; empty means today.
type CustomerRequest struct {
	Name          string `json:"name"`
	ContactNo     string `json:"contact_no"`
	Address       string `json:"address"`
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date,omitempty"`
}

// FlightRowRequest one flight row exactly as typed by the operator.
// Passengers may be empty (defaults to 1).
type FlightRowRequest struct {
	PNR         string `json:"pnr"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Fare        string `json:"fare"`
	Passengers  string `json:"passengers,omitempty"`
}

// CarRowRequest one car row exactly as typed by the operator.
type CarRowRequest struct {
	CarNo       string `json:"car_no"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Fare        string `json:"fare"`
}

// FlightBatchRequest body for POST /api/session/flights.
type FlightBatchRequest struct {
	Rows []FlightRowRequest `json:"rows"`
}

// CarBatchRequest body for POST /api/session/cars.
type CarBatchRequest struct {
	Rows []CarRowRequest `json:"rows"`
}

// SessionResponse state of the active booking session.
type SessionResponse struct {
	ID             string `json:"id"`
	State          string `json:"state"`
	Version        int    `json:"version"`
	InvoiceNumber  string `json:"invoice_number,omitempty"`
	FlightCount    int    `json:"flight_count"`
	CarCount       int    `json:"car_count"`
	FlightSubtotal int64  `json:"flight_subtotal"`
	CarSubtotal    int64  `json:"car_subtotal"`
	GrandTotal     int64  `json:"grand_total"`
}

// ExportRequest body for POST /api/invoice/export. Empty path means the default
// Invoice_<number>.pdf in the configured export directory.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// OutputResponse location of a committed render.
type OutputResponse struct {
	Path string `json:"path"`
}
