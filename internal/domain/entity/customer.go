package entity

// Customer is the person billed on a booking. Name, contact and address are always set together.
type Customer struct {
	Name      string
	ContactNo string
	Address   string
}

// IsZero reports whether no customer data has been recorded yet.
func (c Customer) IsZero() bool {
	return c.Name == "" && c.ContactNo == "" && c.Address == ""
}
