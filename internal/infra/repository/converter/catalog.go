package converter

import (
	"gaming-zone-booking/internal/domain/catalog"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
)

func VenueToCreateParams(v *catalog.Venue) sqlc.CreateVenueParams {
	d := v.Details()
	return sqlc.CreateVenueParams{
		Name:          d.Name,
		Address:       d.Address,
		Area:          d.Area,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		Description:   d.Description,
		ImageUrl:      d.ImageURL,
		Timing:        d.Timing,
		IsOpen:        d.IsOpen,
		StartingPrice: d.StartingPrice,
		Rating:        pgconv.NumericFromFloat64(d.Rating),
	}
}

func VenueToUpdateParams(v *catalog.Venue) sqlc.UpdateVenueParams {
	d := v.Details()
	return sqlc.UpdateVenueParams{
		ID:            v.ID(),
		Name:          d.Name,
		Address:       d.Address,
		Area:          d.Area,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		Description:   d.Description,
		ImageUrl:      d.ImageURL,
		Timing:        d.Timing,
		IsOpen:        d.IsOpen,
		StartingPrice: d.StartingPrice,
		Rating:        pgconv.NumericFromFloat64(d.Rating),
	}
}

func VenueFromRow(row sqlc.Venues) (*catalog.Venue, error) {
	rating, err := pgconv.Float64FromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructVenue(row.ID, catalog.VenueDetails{
		Name:          row.Name,
		Address:       row.Address,
		Area:          row.Area,
		City:          row.City,
		Phone:         row.Phone,
		Email:         row.Email,
		Description:   row.Description,
		ImageURL:      row.ImageUrl,
		Timing:        row.Timing,
		IsOpen:        row.IsOpen,
		StartingPrice: row.StartingPrice,
		Rating:        rating,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}

func GameToCreateParams(g *catalog.Game) sqlc.CreateGameParams {
	d := g.Details()
	return sqlc.CreateGameParams{
		VenueID:      g.VenueID(),
		Name:         d.Name,
		Description:  d.Description,
		ImageUrl:     d.ImageURL,
		PricePerHour: d.PricePerHour,
	}
}

func GameToUpdateParams(g *catalog.Game) sqlc.UpdateGameParams {
	d := g.Details()
	return sqlc.UpdateGameParams{
		ID:           g.ID(),
		Name:         d.Name,
		Description:  d.Description,
		ImageUrl:     d.ImageURL,
		PricePerHour: d.PricePerHour,
	}
}

func GameFromRow(row sqlc.Games) *catalog.Game {
	return catalog.ReconstructGame(row.ID, row.VenueID, catalog.GameDetails{
		Name:         row.Name,
		Description:  row.Description,
		ImageURL:     row.ImageUrl,
		PricePerHour: row.PricePerHour,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func CafeItemToCreateParams(item *catalog.CafeItem) sqlc.CreateCafeItemParams {
	d := item.Details()
	return sqlc.CreateCafeItemParams{
		VenueID:     item.VenueID(),
		Name:        d.Name,
		Category:    string(d.Category),
		Price:       d.Price,
		IsAvailable: d.IsAvailable,
	}
}

func CafeItemToUpdateParams(item *catalog.CafeItem) sqlc.UpdateCafeItemParams {
	d := item.Details()
	return sqlc.UpdateCafeItemParams{
		ID:          item.ID(),
		Name:        d.Name,
		Category:    string(d.Category),
		Price:       d.Price,
		IsAvailable: d.IsAvailable,
	}
}

func CafeItemFromRow(row sqlc.CafeItems) *catalog.CafeItem {
	return catalog.ReconstructCafeItem(row.ID, row.VenueID, catalog.CafeItemDetails{
		Name:        row.Name,
		Category:    catalog.Category(row.Category),
		Price:       row.Price,
		IsAvailable: row.IsAvailable,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
