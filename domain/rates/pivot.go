package rates

import (
	"ratesheets/internal/collections"
)

// pivotRow accumulates one start weight's cells while a group is folded.
type pivotRow struct {
	startWeight string
	endWeight   float64
	zoneValues  *collections.OrderedMap[string, float64]
}

// ZoneLabel renders a raw zone id the way it appears in sheet headers.
func ZoneLabel(zone string) string {
	return "Zone " + zone
}

// Pivot folds one group's records into a weight-by-zone table.
//
// Row 0 is the header: "Start Weight", "End Weight", then one label per
// distinct zone in first-occurrence order. Data rows follow in the order
// start weights were first seen; start weights are compared as raw strings,
// so "10" and "10.0" stay distinct. Rates for repeated (startWeight, zone)
// pairs are summed and an empty start weight is treated as "0". Every data
// row carries a cell for every header zone, zero when that row never saw the
// zone, so columns always align.
func Pivot(records []RateRecord) SheetTable {
	zones := collections.NewOrderedMap[string, struct{}]()
	rows := collections.NewOrderedMap[string, *pivotRow]()

	for _, rec := range records {
		label := ZoneLabel(rec.Zone)
		zones.Set(label, struct{}{})

		startWeight := rec.StartWeight
		if startWeight == "" {
			startWeight = "0"
		}

		row, ok := rows.Get(startWeight)
		if !ok {
			row = &pivotRow{
				startWeight: startWeight,
				endWeight:   rec.EndWeight,
				zoneValues:  collections.NewOrderedMap[string, float64](),
			}
			rows.Set(startWeight, row)
		}
		prev, _ := row.zoneValues.Get(label)
		row.zoneValues.Set(label, prev+rec.Rate)
	}

	header := make([]any, 0, 2+zones.Len())
	header = append(header, "Start Weight", "End Weight")
	for _, label := range zones.Keys() {
		header = append(header, label)
	}

	table := make(SheetTable, 0, 1+rows.Len())
	table = append(table, header)
	rows.Each(func(_ string, row *pivotRow) {
		cells := make([]any, 0, len(header))
		cells = append(cells, row.startWeight, row.endWeight)
		for _, label := range zones.Keys() {
			value, _ := row.zoneValues.Get(label)
			cells = append(cells, value)
		}
		table = append(table, cells)
	})
	return table
}
