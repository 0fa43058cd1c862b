package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderInput is the checkout payload sent to the commerce API. The server
// clears its cart copy as a side effect of accepting the order.
type OrderInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	Pincode    string
	TotalPrice decimal.Decimal
}

// Order is one placed order as returned by the commerce API.
type Order struct {
	ID         string
	Name       string
	Address    string
	City       string
	Pincode    string
	TotalPrice decimal.Decimal
	Status     string
	CreatedAt  time.Time
	Items      []CartLine
}
