package cmdline

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
)

// BookingFile is a whole booking written down ahead of time, replayed through
// the same steps an operator takes on the console.
type BookingFile struct {
	Customer CustomerEntry `yaml:"customer"`
	Flights  []FlightEntry `yaml:"flights"`
	Cars     []CarEntry    `yaml:"cars"`
}

type CustomerEntry struct {
	Name          string `yaml:"name"`
	ContactNo     string `yaml:"contact_no"`
	Address       string `yaml:"address"`
	InvoiceNumber string `yaml:"invoice_number"`
	Date          string `yaml:"date"`
}

type FlightEntry struct {
	PNR         string `yaml:"pnr"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Fare        string `yaml:"fare"`
	Passengers  string `yaml:"passengers"`
}

type CarEntry struct {
	CarNo       string `yaml:"car_no"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Fare        string `yaml:"fare"`
}

// LoadBookingFile reads and parses a booking file. Unknown keys are rejected.
func LoadBookingFile(fs afero.Fs, path string) (*BookingFile, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var bf BookingFile
	if err := dec.Decode(&bf); err != nil {
		return nil, fmt.Errorf("failed to parse booking file %s: %w", path, err)
	}
	return &bf, nil
}

func (bf *BookingFile) customerRequest() dto.CustomerRequest {
	c := bf.Customer
	return dto.CustomerRequest{
		Name:          c.Name,
		ContactNo:     c.ContactNo,
		Address:       c.Address,
		InvoiceNumber: c.InvoiceNumber,
		Date:          c.Date,
	}
}

func (bf *BookingFile) flightBatch() dto.FlightBatchRequest {
	rows := make([]dto.FlightRowRequest, 0, len(bf.Flights))
	for _, f := range bf.Flights {
		rows = append(rows, dto.FlightRowRequest{
			PNR: f.PNR, Source: f.Source, Destination: f.Destination,
			Fare: f.Fare, Passengers: f.Passengers,
		})
	}
	return dto.FlightBatchRequest{Rows: rows}
}

func (bf *BookingFile) carBatch() dto.CarBatchRequest {
	rows := make([]dto.CarRowRequest, 0, len(bf.Cars))
	for _, c := range bf.Cars {
		rows = append(rows, dto.CarRowRequest{
			CarNo: c.CarNo, Source: c.Source, Destination: c.Destination, Fare: c.Fare,
		})
	}
	return dto.CarBatchRequest{Rows: rows}
}
