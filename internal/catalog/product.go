package catalog

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is the backend-assigned product identifier. The backend serializes it as
// a JSON number, but it is opaque to the client, so it is kept as a string and
// decoding accepts either form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty product id")
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid product id %s: %w", data, err)
		}
		*id = ID(s)
		return nil
	}
	if string(data) == "null" {
		return fmt.Errorf("null product id")
	}
	*id = ID(data)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

func (id ID) String() string { return string(id) }

// Product is a catalog entry as returned by the backend. Description is
// nullable on the wire.
type Product struct {
	ID          ID      `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Stock       int     `json:"stock_quantity"`
}

// ProductInput is the payload for create and update calls. Description is
// always sent as a string; the backend treats an empty one as "no description".
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock_quantity"`
}

// Customer mirrors the backend's customer entity.
type Customer struct {
	ID        ID      `json:"customer_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// CustomerInput is the payload for customer create and update calls.
type CustomerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
