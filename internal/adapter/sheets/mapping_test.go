package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString_ShortRow(t *testing.T) {
	t.Parallel()

	row := []interface{}{"Cafe Luna", "Places to eat"}

	assert.Equal(t, "Cafe Luna", cellString(row, colName))
	assert.Equal(t, "", cellString(row, colID), "cells past the row's end read as blank")
}

func TestRowToPlace_ShortRowLeavesBlanks(t *testing.T) {
	t.Parallel()

	p := rowToPlace([]interface{}{"Cafe Luna"})

	assert.Equal(t, "Cafe Luna", p.Name)
	assert.Empty(t, p.ID)
	assert.Empty(t, p.HoursOfOperation)
}

func TestPlaceToRow_ColumnOrder(t *testing.T) {
	t.Parallel()

	row := placeToRow(rowToPlace([]interface{}{
		"Cafe Luna", "Places to eat", "folder", "map", "+506", "+506", "9-17", "№311",
	}))

	assert.Len(t, row, columnCount)
	assert.Equal(t, "Cafe Luna", row[colName])
	assert.Equal(t, "№311", row[colID], "identifier stays in the last column")
}
