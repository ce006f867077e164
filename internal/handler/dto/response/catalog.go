package response

import (
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

func FromVenue(v *catalog.Venue) (*queries.VenueView, error) {
	view := &queries.VenueView{}
	if err := copier.Copy(view, v.Details()); err != nil {
		return nil, err
	}
	view.ID = v.ID()
	view.CreatedAt = v.CreatedAt()
	view.UpdatedAt = v.UpdatedAt()
	return view, nil
}

func FromGame(g *catalog.Game) (*queries.GameView, error) {
	view := &queries.GameView{}
	if err := copier.Copy(view, g.Details()); err != nil {
		return nil, err
	}
	view.ID = g.ID()
	view.VenueID = g.VenueID()
	view.CreatedAt = g.CreatedAt()
	view.UpdatedAt = g.UpdatedAt()
	return view, nil
}

func FromCafeItem(c *catalog.CafeItem) (*queries.CafeItemView, error) {
	view := &queries.CafeItemView{}
	if err := copier.Copy(view, c.Details()); err != nil {
		return nil, err
	}
	view.ID = c.ID()
	view.VenueID = c.VenueID()
	view.CreatedAt = c.CreatedAt()
	view.UpdatedAt = c.UpdatedAt()
	return view, nil
}
