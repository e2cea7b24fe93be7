package entity

// CarLineItem is one car hire booked for the customer (fare >= 0).
type CarLineItem struct {
	CarNo       string
	Source      string
	Destination string
	Fare        int64
}
