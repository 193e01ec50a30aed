package model

// CatalogItem is a registered item name. Names are unique; the catalog
// exists to reject duplicate names before they reach inventory records.
type CatalogItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
