// Package messages holds the user-facing strings shared by the widgets and
// asserted on in tests.
package messages

const (
	BackendUnreachable = "Cannot reach the catalog service. Is it running?"
	ListFailed         = "Failed to load products."
	NoProducts         = "No products found."
	NoDescription      = "No description provided."

	ProductCreated = "Product created successfully."

	PriceNotNumeric = "price must be a number"
	StockNotNumeric = "stock quantity must be a whole number"
)
