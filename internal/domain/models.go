package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a catalog price that may be missing fiscal data. A product without
// a known price cannot be sold, so the zero value (unknown) is the safe
// default.
type Price struct {
	Amount decimal.Decimal
	Known  bool
}

func KnownPrice(amount decimal.Decimal) Price { return Price{Amount: amount, Known: true} }

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return []byte("null"), nil
	}
	return json.Marshal(p.Amount)
}

func (p *Price) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = Price{}
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	*p = KnownPrice(d)
	return nil
}

func (p *Price) Scan(src any) error {
	if src == nil {
		*p = Price{}
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("scan price: %w", err)
	}
	*p = KnownPrice(d)
	return nil
}

func (p Price) Value() (driver.Value, error) {
	if !p.Known {
		return nil, nil
	}
	return p.Amount.String(), nil
}

// Stock is a last-known inventory count that may be missing. Unknown stock
// blocks adding the product to a cart.
type Stock struct {
	Count int
	Known bool
}

func KnownStock(count int) Stock { return Stock{Count: count, Known: true} }

func (s Stock) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return []byte("null"), nil
	}
	return json.Marshal(s.Count)
}

func (s *Stock) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Stock{}
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = KnownStock(n)
	return nil
}

func (s *Stock) Scan(src any) error {
	if src == nil {
		*s = Stock{}
		return nil
	}
	switch v := src.(type) {
	case int64:
		*s = KnownStock(int(v))
		return nil
	case []byte:
		var n int
		if _, err := fmt.Sscan(string(v), &n); err != nil {
			return fmt.Errorf("scan stock: %w", err)
		}
		*s = KnownStock(n)
		return nil
	default:
		return fmt.Errorf("scan stock: unsupported type %T", src)
	}
}

func (s Stock) Value() (driver.Value, error) {
	if !s.Known {
		return nil, nil
	}
	return int64(s.Count), nil
}

type Product struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`
	Price    Price  `db:"price" json:"price"`
	Stock    Stock  `db:"stock" json:"stock"`
	ImageURL string `db:"image_url" json:"imageUrl,omitempty"`
}

type Customer struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
