package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidecr/placebot/internal/domain"
)

func TestRequestUnfilled_MirrorDisabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&mockRecordStore{}, &mockBlobStore{}, nil, nil, nil)
	svc.Start(ctx, testChatID, testOperator)

	replies := svc.RequestUnfilled(ctx, testChatID)

	require.Len(t, replies, 1)
	assert.Equal(t, msgMirrorDisabled, replies[0].Text)
}

func TestHandleLocation_ListsNearestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mirror := &mockMirror{
		ListUnfilledFunc: func(ctx context.Context, near domain.Coordinates, limit int) ([]*domain.Place, error) {
			assert.InDelta(t, 9.93, near.Lat, 0.001)
			assert.InDelta(t, -84.08, near.Lon, 0.001)
			assert.Equal(t, unfilledLimit, limit)
			return []*domain.Place{
				{ID: "№311", Name: "Cafe Luna", Category: domain.CategoryPlacesToEat},
				{ID: "№312", Name: "Rio Tours"},
			}, nil
		},
	}
	svc := newTestService(&mockRecordStore{}, &mockBlobStore{}, nil, mirror, &mockResolver{})
	svc.Start(ctx, testChatID, testOperator)

	replies := svc.RequestUnfilled(ctx, testChatID)
	require.Len(t, replies, 1)
	assert.Equal(t, MarkupShareLocation, replies[0].Markup)

	replies = svc.HandleLocation(ctx, testChatID, 9.93, -84.08)

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Unfilled places near you:")
	assert.Contains(t, replies[0].Text, "1. Cafe Luna")
	assert.Contains(t, replies[0].Text, "2. Rio Tours")
	assert.Contains(t, replies[0].Text, "missing: Category")
}

func TestHandleLocation_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mirror := &mockMirror{
		ListUnfilledFunc: func(ctx context.Context, near domain.Coordinates, limit int) ([]*domain.Place, error) {
			return nil, nil
		},
	}
	svc := newTestService(&mockRecordStore{}, &mockBlobStore{}, nil, mirror, nil)
	svc.Start(ctx, testChatID, testOperator)

	replies := svc.HandleLocation(ctx, testChatID, 9.93, -84.08)

	require.Len(t, replies, 1)
	assert.Equal(t, "All nearby places are fully filled.", replies[0].Text)
}

func TestSave_MirrorsWithCoordinates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &mockRecordStore{
		WriteFunc: func(ctx context.Context, place *domain.Place) (*domain.Place, bool, error) {
			return nil, true, nil
		},
	}
	var gotCoords *domain.Coordinates
	mirror := &mockMirror{
		UpsertFunc: func(ctx context.Context, place *domain.Place, coords *domain.Coordinates) error {
			gotCoords = coords
			return nil
		},
	}
	geo := &mockResolver{
		CoordinatesFunc: func(ctx context.Context, shortURL string) (domain.Coordinates, error) {
			assert.Equal(t, "https://maps.app.goo.gl/Abc123", shortURL)
			return domain.Coordinates{Lat: 9.93, Lon: -84.08}, nil
		},
	}
	svc := newTestService(store, &mockBlobStore{}, nil, mirror, geo)
	openCard(t, svc, true)
	svc.SelectField(ctx, testChatID, "map_link")
	svc.HandleText(ctx, testChatID, "https://maps.app.goo.gl/Abc123")

	replies := svc.Save(ctx, testChatID)

	assert.Contains(t, texts(replies), msgSaved)
	require.Equal(t, 1, mirror.upsertCalls)
	require.NotNil(t, gotCoords)
	assert.InDelta(t, 9.93, gotCoords.Lat, 0.001)
}

func TestSave_MirrorFailureDoesNotFailSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &mockRecordStore{
		WriteFunc: func(ctx context.Context, place *domain.Place) (*domain.Place, bool, error) {
			return nil, true, nil
		},
	}
	mirror := &mockMirror{
		UpsertFunc: func(ctx context.Context, place *domain.Place, coords *domain.Coordinates) error {
			return errors.New("database down")
		},
	}
	svc := newTestService(store, &mockBlobStore{}, nil, mirror, nil)
	openCard(t, svc, true)

	replies := svc.Save(ctx, testChatID)

	assert.Contains(t, texts(replies), msgSaved)
	assert.Equal(t, 1, mirror.upsertCalls)
}
