package sheets

import (
	"fmt"

	"github.com/guidecr/placebot/internal/domain"
)

// Column layout of the production sheet. The identifier lives in the last
// column, after all operator-editable fields.
const (
	colName = iota
	colCategory
	colPhotos
	colMapLink
	colPhone
	colWhatsApp
	colHours
	colID
	columnCount
)

// headerRow matches the production sheet's first row verbatim.
var headerRow = []interface{}{
	"name", "type", "photos", "google_map",
	"phone_numbers", "Whatsapp", "hours_of_operation", "ID",
}

// cellString reads a cell, tolerating short rows and non-string values.
func cellString(row []interface{}, col int) string {
	if col >= len(row) {
		return ""
	}
	if s, ok := row[col].(string); ok {
		return s
	}
	return fmt.Sprint(row[col])
}

func rowToPlace(row []interface{}) *domain.Place {
	return &domain.Place{
		ID:               cellString(row, colID),
		Name:             cellString(row, colName),
		Category:         domain.Category(cellString(row, colCategory)),
		PhotoFolderLink:  cellString(row, colPhotos),
		MapLink:          cellString(row, colMapLink),
		PhoneNumber:      cellString(row, colPhone),
		WhatsAppNumber:   cellString(row, colWhatsApp),
		HoursOfOperation: cellString(row, colHours),
	}
}

func placeToRow(p *domain.Place) []interface{} {
	row := make([]interface{}, columnCount)
	row[colName] = p.Name
	row[colCategory] = string(p.Category)
	row[colPhotos] = p.PhotoFolderLink
	row[colMapLink] = p.MapLink
	row[colPhone] = p.PhoneNumber
	row[colWhatsApp] = p.WhatsAppNumber
	row[colHours] = p.HoursOfOperation
	row[colID] = p.ID
	return row
}
