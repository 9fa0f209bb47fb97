package rates

import (
	"github.com/google/uuid"
)

// RateRecord is one flat shipping-rate row as stored for a client.
// Defaulting for absent values (StartWeight "0", EndWeight/Rate 0) is applied
// once at ingestion by the repository; domain code can assume the fields are
// populated.
type RateRecord struct {
	ClientID      uuid.UUID `db:"client_id"`
	Locale        string    `db:"locale"`
	ShippingSpeed string    `db:"shipping_speed"`
	Zone          string    `db:"zone"`
	StartWeight   string    `db:"start_weight"`
	EndWeight     float64   `db:"end_weight"`
	Rate          float64   `db:"rate"`
}

// GroupKey identifies one output sheet: a (locale, shipping-speed) pair.
type GroupKey struct {
	Locale        string `db:"locale"`
	ShippingSpeed string `db:"shipping_speed"`
}

// String renders the key in its canonical "locale,speed" form.
func (k GroupKey) String() string {
	return k.Locale + "," + k.ShippingSpeed
}

// SheetTable is an ordered grid of cells. Row 0 is the header; every data row
// has exactly as many cells as the header.
type SheetTable [][]any

// SheetData is one named table, corresponding to one exported worksheet.
type SheetData struct {
	Name string
	Rows SheetTable
}
