// internal/models/order.go
package models

import "github.com/shopspring/decimal"

type Order struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Status   OrderStatus     `json:"status"`
	Items    []OrderItem     `json:"items"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	return out
}
