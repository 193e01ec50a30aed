package model

import "time"

// InventoryItem is a stock movement record. StockRemaining is derived:
// it equals TotalStock - StockTaken after every add and update. Key is a
// monotonically increasing integer assigned by the store on insert.
type InventoryItem struct {
	ID             string    `json:"id"`
	ItemName       string    `json:"itemName"`
	Key            int64     `json:"key"`
	StockTaken     float64   `json:"stockTaken"`
	StockRemaining float64   `json:"stockRemaining"`
	TotalStock     float64   `json:"totalStock"`
	DateTime       time.Time `json:"dateTime"`
}
