//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/handler/api"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/tests/common/builder"
	"gaming-zone-booking/tests/common/httptest"
	queriesmock "gaming-zone-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	catalog      *queriesmock.MockCatalogQueries
	availability *queriesmock.MockAvailabilityQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.catalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	h := api.NewCatalogHandler(s.catalog, s.availability)
	s.router.GET("/venues", h.ListVenues)
	s.router.GET("/venues/:id", h.GetVenue)
	s.router.GET("/games/:id", h.GetGame)
	s.router.GET("/games/:id/availability", h.Availability)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListVenues() {
	s.Run("success: filters by city", func() {
		s.catalog.EXPECT().ListVenues(gomock.Any(), "Bengaluru").
			Return([]*queries.VenueView{builder.NewVenueBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues?city=Bengaluru", nil, "")

		var response []queries.VenueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("NeonNexus Koramangala", response[0].Name)
	})

	s.Run("success: nothing matches", func() {
		s.catalog.EXPECT().ListVenues(gomock.Any(), "").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *CatalogHandlerTestSuite) TestGetVenueAndGame() {
	vb := builder.NewVenueBuilder()

	s.Run("venue with games and menu", func() {
		detail := &queries.VenueDetailView{
			Venue:     vb.BuildView(),
			Games:     []*queries.GameView{builder.NewGameBuilder().AtVenue(vb.ID).BuildView()},
			CafeItems: []*queries.CafeItemView{builder.NewCafeItemBuilder().AtVenue(vb.ID).BuildView()},
		}
		s.catalog.EXPECT().GetVenue(gomock.Any(), vb.ID).Return(detail, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+vb.ID.String(), nil, "")

		var response queries.VenueDetailView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Games, 1)
		s.Len(response.CafeItems, 1)
	})

	s.Run("venue 404", func() {
		s.catalog.EXPECT().GetVenue(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrVenueNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("game 404", func() {
		s.catalog.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrGameNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CatalogHandlerTestSuite) TestAvailability() {
	gameID := uuid.New()
	url := "/games/" + gameID.String() + "/availability"

	s.Run("success: one entry per grid slot", func() {
		grid, err := booking.NewGrid(10, 24)
		s.Require().NoError(err)
		engine := booking.NewAvailabilityEngine(grid, time.UTC)
		date, err := booking.ParseDate("2026-03-10")
		s.Require().NoError(err)
		now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		a := engine.Evaluate(gameID, date, []string{"18:00"}, now)

		s.availability.EXPECT().ForGame(gomock.Any(), gameID, "2026-03-10").Return(&a, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-10", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Slots, 14)
		for _, sl := range response.Slots {
			s.Equal(sl.TimeSlot != "18:00", sl.Available, sl.TimeSlot)
		}
	})

	s.Run("error: date is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Date is required")
	})

	s.Run("error: malformed date", func() {
		s.availability.EXPECT().ForGame(gomock.Any(), gameID, "10-03-2026").Return(nil, booking.ErrInvalidDate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=10-03-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
