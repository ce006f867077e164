//go:build unit

package readstore

import (
	"context"
	"testing"

	"gaming-zone-booking/internal/infra"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReadQueries struct {
	mock.Mock
}

func (m *MockCatalogReadQueries) ListVenues(ctx context.Context, db sqlc.DBTX, city pgtype.Text) ([]sqlc.Venues, error) {
	args := m.Called(ctx, db, city)
	rows, _ := args.Get(0).([]sqlc.Venues)
	return rows, args.Error(1)
}

func (m *MockCatalogReadQueries) GetVenueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Venues, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Venues), args.Error(1)
}

func (m *MockCatalogReadQueries) GetGameByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Games, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Games), args.Error(1)
}

func (m *MockCatalogReadQueries) ListGamesByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.Games, error) {
	args := m.Called(ctx, db, venueID)
	rows, _ := args.Get(0).([]sqlc.Games)
	return rows, args.Error(1)
}

func (m *MockCatalogReadQueries) ListCafeItemsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.CafeItems, error) {
	args := m.Called(ctx, db, venueID)
	rows, _ := args.Get(0).([]sqlc.CafeItems)
	return rows, args.Error(1)
}

func (m *MockCatalogReadQueries) ListAvailableCafeItemsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.CafeItems, error) {
	args := m.Called(ctx, db, venueID)
	rows, _ := args.Get(0).([]sqlc.CafeItems)
	return rows, args.Error(1)
}

func venueRow() sqlc.Venues {
	return sqlc.Venues{
		ID:            uuid.New(),
		Name:          "NeonNexus Koramangala",
		Address:       "80 Feet Road",
		Area:          "Koramangala",
		City:          "Bengaluru",
		IsOpen:        true,
		StartingPrice: 150,
		Rating:        pgconv.NumericFromFloat64(4.6),
	}
}

func TestCatalogReadStoreListVenues(t *testing.T) {
	t.Run("no city means no filter", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("ListVenues", mock.Anything, mock.Anything, pgtype.Text{}).Return([]sqlc.Venues{venueRow()}, nil)

		got, err := NewCatalogReadStore(q, nil).ListVenues(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.InDelta(t, 4.6, got[0].Rating, 0.001)
	})

	t.Run("city filter", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("ListVenues", mock.Anything, mock.Anything, pgconv.StringToPgtype("Pune")).Return([]sqlc.Venues{}, nil)

		got, err := NewCatalogReadStore(q, nil).ListVenues(context.Background(), "Pune")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCatalogReadStoreByID(t *testing.T) {
	id := uuid.New()

	t.Run("venue not found", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("GetVenueByID", mock.Anything, mock.Anything, id).Return(sqlc.Venues{}, pgx.ErrNoRows)

		_, err := NewCatalogReadStore(q, nil).VenueByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("game found", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("GetGameByID", mock.Anything, mock.Anything, id).
			Return(sqlc.Games{ID: id, VenueID: uuid.New(), Name: "PS5 Station", PricePerHour: 300}, nil)

		g, err := NewCatalogReadStore(q, nil).GameByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, int64(300), g.PricePerHour)
	})

	t.Run("game lookup failure", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("GetGameByID", mock.Anything, mock.Anything, id).Return(sqlc.Games{}, assert.AnError)

		_, err := NewCatalogReadStore(q, nil).GameByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStoreCafeItemsByVenue(t *testing.T) {
	venueID := uuid.New()
	items := []sqlc.CafeItems{
		{ID: uuid.New(), VenueID: venueID, Name: "Cold Coffee", Category: "Coffee", Price: 120, IsAvailable: true},
	}

	t.Run("public menu hides unavailable items", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("ListAvailableCafeItemsByVenue", mock.Anything, mock.Anything, venueID).Return(items, nil)

		got, err := NewCatalogReadStore(q, nil).CafeItemsByVenue(context.Background(), venueID, false)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		q.AssertNotCalled(t, "ListCafeItemsByVenue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin listing includes everything", func(t *testing.T) {
		q := new(MockCatalogReadQueries)
		q.On("ListCafeItemsByVenue", mock.Anything, mock.Anything, venueID).Return(items, nil)

		got, err := NewCatalogReadStore(q, nil).CafeItemsByVenue(context.Background(), venueID, true)

		require.NoError(t, err)
		assert.Equal(t, "Cold Coffee", got[0].Name)
		q.AssertNotCalled(t, "ListAvailableCafeItemsByVenue", mock.Anything, mock.Anything, mock.Anything)
	})
}
