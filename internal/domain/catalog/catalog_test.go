//go:build unit

package catalog_test

import (
	"math"
	"testing"

	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVenue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.VenueDetails)
		errIs  error
	}{
		{name: "valid", mutate: func(*catalog.VenueDetails) {}},
		{name: "blank name", mutate: func(d *catalog.VenueDetails) { d.Name = "  " }, errIs: catalog.ErrInvalidName},
		{name: "missing address", mutate: func(d *catalog.VenueDetails) { d.Address = "" }, errIs: catalog.ErrInvalidAddress},
		{name: "missing city", mutate: func(d *catalog.VenueDetails) { d.City = "" }, errIs: catalog.ErrInvalidCity},
		{name: "negative starting price", mutate: func(d *catalog.VenueDetails) { d.StartingPrice = -1 }, errIs: catalog.ErrInvalidPrice},
		{name: "rating above five", mutate: func(d *catalog.VenueDetails) { d.Rating = 5.1 }, errIs: catalog.ErrInvalidRating},
		{name: "rating NaN", mutate: func(d *catalog.VenueDetails) { d.Rating = math.NaN() }, errIs: catalog.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := builder.NewVenueBuilder().Details
			tt.mutate(&d)

			v, err := catalog.NewVenue(d)

			if tt.errIs != nil {
				assert.Nil(t, v)
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, v.ID())
		})
	}
}

func TestVenueNormalizes(t *testing.T) {
	d := builder.NewVenueBuilder().Details
	d.Name = "  NeonNexus  "
	d.Rating = 4.66

	v, err := catalog.NewVenue(d)

	require.NoError(t, err)
	assert.Equal(t, "NeonNexus", v.Name())
	assert.InDelta(t, 4.7, v.Details().Rating, 1e-9)
	assert.Equal(t, "80 Feet Road, Koramangala, Bengaluru", v.FullAddress())
}

func TestVenueUpdateKeepsStateOnError(t *testing.T) {
	v := builder.NewVenueBuilder().BuildDomain()
	d := v.Details()
	d.City = ""

	assert.ErrorIs(t, v.Update(d), catalog.ErrInvalidCity)
	assert.Equal(t, "Bengaluru", v.City())
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "MG Road, Bengaluru", catalog.FormatAddress("MG Road", " ", "Bengaluru"))
	assert.Equal(t, "", catalog.FormatAddress())
}

func TestNewGame(t *testing.T) {
	venueID := uuid.New()

	g, err := catalog.NewGame(venueID, catalog.GameDetails{Name: "Racing Sim", PricePerHour: 400})
	require.NoError(t, err)
	assert.True(t, g.BelongsTo(venueID))
	assert.False(t, g.BelongsTo(uuid.New()))

	_, err = catalog.NewGame(venueID, catalog.GameDetails{Name: "Racing Sim"})
	assert.ErrorIs(t, err, catalog.ErrInvalidHourlyRate)

	_, err = catalog.NewGame(venueID, catalog.GameDetails{Name: "", PricePerHour: 100})
	assert.ErrorIs(t, err, catalog.ErrInvalidName)
}

func TestCafeItem(t *testing.T) {
	venueID := uuid.New()

	t.Run("orderable only at its venue while available", func(t *testing.T) {
		item := builder.NewCafeItemBuilder().AtVenue(venueID).BuildDomain()
		assert.True(t, item.Orderable(venueID))
		assert.False(t, item.Orderable(uuid.New()))

		off := builder.NewCafeItemBuilder().AtVenue(venueID).Unavailable().BuildDomain()
		assert.False(t, off.Orderable(venueID))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := catalog.NewCafeItem(venueID, catalog.CafeItemDetails{Name: "Tea", Category: "Dessert", Price: 40})
		assert.ErrorIs(t, err, catalog.ErrInvalidCategory)

		_, err = catalog.NewCafeItem(venueID, catalog.CafeItemDetails{Name: "Tea", Category: catalog.CategoryBeverages, Price: -1})
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)

		item, err := catalog.NewCafeItem(venueID, catalog.CafeItemDetails{Name: "Water", Category: catalog.CategoryBeverages})
		require.NoError(t, err)
		assert.Equal(t, int64(0), item.Price())
	})

	t.Run("category parsing", func(t *testing.T) {
		c, err := catalog.NewCategory("Snacks")
		require.NoError(t, err)
		assert.Equal(t, catalog.CategorySnacks, c)

		_, err = catalog.NewCategory("snacks")
		assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
	})
}
