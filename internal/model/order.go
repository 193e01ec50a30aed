package model

import "time"

// OrderLine is a single entry in an order.
type OrderLine struct {
	ItemName string  `json:"itemName" bson:"itemName"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Order is a recorded sale. Date defaults to the creation time.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Date        time.Time   `json:"date"`
}
