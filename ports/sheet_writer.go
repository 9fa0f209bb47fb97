package ports

import "ratesheets/domain/rates"

// SheetWriter persists a complete set of sheets as one document.
type SheetWriter interface {
	Write(sheets []rates.SheetData) error
}
