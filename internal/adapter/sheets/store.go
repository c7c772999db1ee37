// Package sheets persists place cards to a single Google Sheet tab, one row
// per card.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/guidecr/placebot/internal/domain"
)

// idOffset keeps minted identifiers compatible with the production sheet's
// historical numbering.
const idOffset = 310

// Store is a record store backed by the Google Sheets API.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	log           *slog.Logger
}

// NewStore creates a Store over an authenticated Sheets service.
func NewStore(logger *slog.Logger, svc *gsheets.Service, spreadsheetID, sheetName string) *Store {
	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		log:           logger.With("adapter", "sheets"),
	}
}

// FindOrCreate returns the card whose name column matches, or a blank card
// with a freshly minted identifier (created=true). The blank card is not
// appended here; Write persists it, so an exited card leaves no stub row.
func (s *Store) FindOrCreate(ctx context.Context, name string) (*domain.Place, bool, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return nil, false, err
	}

	name = strings.TrimSpace(name)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cellString(row, colName) == name {
			s.log.InfoContext(ctx, "card found",
				slog.String("place_id", cellString(row, colID)),
				slog.String("name", name),
			)
			return rowToPlace(row), false, nil
		}
	}

	// Identifiers count data rows only; the header row does not number.
	dataRows := len(rows)
	if dataRows > 0 {
		dataRows--
	}
	place := &domain.Place{
		ID:   fmt.Sprintf("№%d", dataRows+idOffset),
		Name: name,
	}
	s.log.InfoContext(ctx, "card minted",
		slog.String("place_id", place.ID),
		slog.String("name", name),
	)
	return place, true, nil
}

// Write locates the row by identifier, captures its prior values, and
// overwrites it. When the identifier is absent the row is appended and
// inserted=true is returned with no prior.
func (s *Store) Write(ctx context.Context, place *domain.Place) (*domain.Place, bool, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return nil, false, err
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cellString(row, colID) != place.ID {
			continue
		}

		prior := rowToPlace(row)
		// Sheet rows are 1-based.
		rng := fmt.Sprintf("%s!A%d:H%d", s.sheetName, i+1, i+1)
		vr := &gsheets.ValueRange{Values: [][]interface{}{placeToRow(place)}}
		if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return nil, false, upstream("update row", err)
		}

		s.log.InfoContext(ctx, "row updated",
			slog.String("place_id", place.ID),
			slog.Int("row", i+1),
		)
		return prior, false, nil
	}

	values := [][]interface{}{placeToRow(place)}
	if len(rows) == 0 {
		values = [][]interface{}{headerRow, placeToRow(place)}
	}
	vr := &gsheets.ValueRange{Values: values}
	if _, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do(); err != nil {
		return nil, false, upstream("append row", err)
	}

	s.log.InfoContext(ctx, "row appended", slog.String("place_id", place.ID))
	return nil, true, nil
}

func (s *Store) readAll(ctx context.Context) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, upstream("read values", err)
	}
	return resp.Values, nil
}

func upstream(op string, err error) error {
	return fmt.Errorf("sheets: %s: %w", op, errors.Join(domain.ErrUpstream, err))
}
