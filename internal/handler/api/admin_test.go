//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/handler/api"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/tests/common/builder"
	"gaming-zone-booking/tests/common/httptest"
	commandsmock "gaming-zone-booking/tests/mock/commands"
	queriesmock "gaming-zone-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	bookingQueries  *queriesmock.MockBookingQueries
	catalogCommands *commandsmock.MockCatalogCommands
	catalogQueries  *queriesmock.MockCatalogQueries
	userCommands    *commandsmock.MockUserCommands
	userQueries     *queriesmock.MockUserQueries
	statsQueries    *queriesmock.MockStatsQueries
	sessions        *sessions
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.catalogCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.catalogQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.userCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.userQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.statsQueries = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.sessions = newSessions(s.T(), s.mockCtrl)

	bookings := api.NewAdminBookingHandler(s.bookingCommands, s.bookingQueries)
	cat := api.NewAdminCatalogHandler(s.catalogCommands, s.catalogQueries)
	users := api.NewAdminUserHandler(s.userCommands, s.userQueries)
	stats := api.NewAdminStatsHandler(s.statsQueries)

	admin := s.router.Group("/admin", s.sessions.auth.RequireAuth(), s.sessions.auth.RequireAdmin())
	admin.GET("/stats", stats.Dashboard)
	admin.GET("/bookings", bookings.List)
	admin.POST("/bookings", bookings.Create)
	admin.PATCH("/bookings/:id/status", bookings.ChangeStatus)
	admin.POST("/venues", cat.CreateVenue)
	admin.PUT("/venues/:id", cat.UpdateVenue)
	admin.DELETE("/venues/:id", cat.DeleteVenue)
	admin.POST("/games", cat.CreateGame)
	admin.DELETE("/games/:id", cat.DeleteGame)
	admin.GET("/cafe-items", cat.ListCafeItems)
	admin.POST("/cafe-items", cat.CreateCafeItem)
	admin.PUT("/cafe-items/:id", cat.UpdateCafeItem)
	admin.GET("/users", users.List)
	admin.PATCH("/users/:id/role", users.ChangeRole)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAccess() {
	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 403 for players", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})
}

func (s *AdminHandlerTestSuite) TestDashboard() {
	url := "/admin/stats"

	s.Run("success: returns totals and recent bookings", func() {
		recent := builder.NewBookingBuilder().BuildView()
		s.statsQueries.EXPECT().Dashboard(gomock.Any(), s.sessions.admin).Return(&queries.DashboardView{
			TotalVenues:    2,
			TotalGames:     6,
			TotalBookings:  31,
			TotalUsers:     14,
			TodayBookings:  3,
			Revenue:        21900,
			RecentBookings: []*queries.BookingView{recent},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)

		var response queries.DashboardView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.TotalVenues)
		s.Equal(int64(3), response.TodayBookings)
		s.Equal(int64(21900), response.Revenue)
		s.Require().Len(response.RecentBookings, 1)
		s.Equal(recent.ID, response.RecentBookings[0].ID)
		s.Contains(rec.Body.String(), `"totalBookings":31`)
	})

	s.Run("error: 403 for players", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	gameID := uuid.New()

	s.Run("success: query string becomes a filter", func() {
		s.bookingQueries.EXPECT().List(gomock.Any(), s.sessions.admin, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, f queries.BookingFilter) ([]*queries.BookingView, error) {
				s.Require().NotNil(f.Status)
				s.Equal(booking.StatusPending, *f.Status)
				s.Require().NotNil(f.GameID)
				s.Equal(gameID, *f.GameID)
				s.Require().NotNil(f.Date)
				s.Equal("2026-03-10", f.Date.String())
				s.Nil(f.VenueID)
				s.Equal(queries.Page{Limit: 20, Offset: 40}, f.Page)
				return []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil
			})

		url := "/admin/bookings?status=pending&gameId=" + gameID.String() + "&date=2026-03-10&limit=20&offset=40"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
	})

	s.Run("error: 400 on bad filters", func() {
		for _, q := range []string{"status=archived", "gameId=nope", "date=tomorrow", "offset=-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?"+q, nil, adminToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})
}

func (s *AdminHandlerTestSuite) TestCreateBooking() {
	owner := uuid.New()
	b := builder.NewBookingBuilder().WithOwner(owner).WithStatus("pending")
	created := b.BuildDomain()
	body := map[string]any{
		"gameId":        b.Game.ID,
		"venueId":       b.Venue.ID,
		"date":          b.Date,
		"timeSlot":      b.TimeSlot,
		"duration":      b.DurationHours,
		"paymentMethod": "cash",
		"userId":        owner,
		"status":        "pending",
		"paymentStatus": "paid",
	}

	s.Run("success: books on behalf of a user", func() {
		s.bookingCommands.EXPECT().Create(gomock.Any(), s.sessions.admin, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, in commands.CreateBookingInput) (*booking.Booking, error) {
				s.Require().NotNil(in.UserID)
				s.Equal(owner, *in.UserID)
				s.Equal("pending", in.Status)
				s.Equal("cash", in.PaymentMethod)
				s.Equal("paid", in.PaymentStatus)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings", body, adminToken)

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(owner, response.UserID)
	})

	s.Run("error: 400 when userId is missing", func() {
		noUser := map[string]any{}
		for k, v := range body {
			noUser[k] = v
		}
		delete(noUser, "userId")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings", noUser, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AdminHandlerTestSuite) TestChangeStatus() {
	b := builder.NewBookingBuilder().WithStatus("completed")
	updated := b.BuildDomain()
	url := "/admin/bookings/" + updated.ID().String() + "/status"
	version := 1

	s.Run("success", func() {
		s.bookingCommands.EXPECT().
			ChangeStatus(gomock.Any(), s.sessions.admin, updated.ID(), commands.ChangeStatusInput{Status: "completed", Version: &version}).
			Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed", "version": 1}, adminToken)

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"stale version", booking.ErrConflict, http.StatusConflict},
			{"illegal transition", booking.ErrInvalidTransition, http.StatusBadRequest},
			{"missing", booking.ErrBookingNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.bookingCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestVenues() {
	vb := builder.NewVenueBuilder()
	venue := vb.BuildDomain()

	s.Run("create: omitted isOpen defaults to open", func() {
		body := map[string]any{"name": "NeonNexus Koramangala", "address": "80 Feet Road", "city": "Bengaluru", "rating": 4.6}
		s.catalogCommands.EXPECT().CreateVenue(gomock.Any(), s.sessions.admin, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, d catalog.VenueDetails) (*catalog.Venue, error) {
				want := catalog.VenueDetails{Name: "NeonNexus Koramangala", Address: "80 Feet Road", City: "Bengaluru", IsOpen: true, Rating: 4.6}
				s.Empty(cmp.Diff(want, d))
				return venue, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/venues", body, adminToken)

		var response queries.VenueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(venue.ID(), response.ID)
	})

	s.Run("create: 400 on rating above 5", func() {
		body := map[string]any{"name": "X", "address": "Y", "city": "Z", "rating": 5.5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/venues", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("update: only sent fields are patched", func() {
		s.catalogCommands.EXPECT().UpdateVenue(gomock.Any(), s.sessions.admin, venue.ID(), gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, _ uuid.UUID, p commands.VenuePatch) (*catalog.Venue, error) {
				s.Require().NotNil(p.IsOpen)
				s.False(*p.IsOpen)
				s.Nil(p.Name)
				s.Nil(p.Rating)
				return venue, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/venues/"+venue.ID().String(), map[string]any{"isOpen": false}, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("delete", func() {
		s.catalogCommands.EXPECT().DeleteVenue(gomock.Any(), s.sessions.admin, venue.ID()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/venues/"+venue.ID().String(), nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 404", func() {
		s.catalogCommands.EXPECT().DeleteVenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog.ErrVenueNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/venues/"+uuid.NewString(), nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *AdminHandlerTestSuite) TestGamesAndCafeItems() {
	venueID := uuid.New()

	s.Run("create game", func() {
		game := builder.NewGameBuilder().AtVenue(venueID).BuildDomain()
		s.catalogCommands.EXPECT().
			CreateGame(gomock.Any(), s.sessions.admin, venueID, catalog.GameDetails{Name: "PS5 Station", PricePerHour: 300}).
			Return(game, nil)

		body := map[string]any{"venueId": venueID, "name": "PS5 Station", "pricePerHour": 300}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/games", body, adminToken)

		var response queries.GameView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(venueID, response.VenueID)
	})

	s.Run("create game: 400 on zero rate", func() {
		body := map[string]any{"venueId": venueID, "name": "PS5 Station", "pricePerHour": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/games", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("create game: 404 for unknown venue", func() {
		s.catalogCommands.EXPECT().CreateGame(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, catalog.ErrVenueNotFound)

		body := map[string]any{"venueId": venueID, "name": "PS5 Station", "pricePerHour": 300}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/games", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("create cafe item: omitted availability means available", func() {
		item := builder.NewCafeItemBuilder().AtVenue(venueID).BuildDomain()
		s.catalogCommands.EXPECT().
			CreateCafeItem(gomock.Any(), s.sessions.admin, venueID, catalog.CafeItemDetails{Name: "Cold Coffee", Category: catalog.Category("Coffee"), Price: 120, IsAvailable: true}).
			Return(item, nil)

		body := map[string]any{"venueId": venueID, "name": "Cold Coffee", "category": "Coffee", "price": 120}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/cafe-items", body, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("create cafe item: 400 on unknown category", func() {
		body := map[string]any{"venueId": venueID, "name": "Cold Coffee", "category": "Desserts", "price": 120}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/cafe-items", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("update cafe item: toggles availability", func() {
		item := builder.NewCafeItemBuilder().AtVenue(venueID).Unavailable().BuildDomain()
		s.catalogCommands.EXPECT().UpdateCafeItem(gomock.Any(), s.sessions.admin, item.ID(), gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, _ uuid.UUID, p commands.CafeItemPatch) (*catalog.CafeItem, error) {
				s.Require().NotNil(p.IsAvailable)
				s.False(*p.IsAvailable)
				return item, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/cafe-items/"+item.ID().String(), map[string]any{"isAvailable": false}, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("list cafe items", func() {
		s.catalogQueries.EXPECT().ListCafeItems(gomock.Any(), s.sessions.admin, venueID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/cafe-items?venueId="+venueID.String(), nil, adminToken)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("list cafe items: 400 without venueId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/cafe-items", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venueId")
	})
}

func (s *AdminHandlerTestSuite) TestUsers() {
	target := builder.NewUserBuilder().WithEmail("other@example.com").AsAdmin()

	s.Run("list", func() {
		s.userQueries.EXPECT().List(gomock.Any(), s.sessions.admin, queries.Page{Limit: 5, Offset: 0}).
			Return([]*queries.UserView{target.BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?limit=5", nil, adminToken)

		var response []queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("change role", func() {
		s.userCommands.EXPECT().ChangeRole(gomock.Any(), s.sessions.admin, target.ID, "admin").Return(target.BuildStored(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/users/"+target.ID.String()+"/role", map[string]any{"role": "admin"}, adminToken)

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response.Role)
	})

	s.Run("change role: 400 on unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/users/"+target.ID.String()+"/role", map[string]any{"role": "owner"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("change role: 403 on self", func() {
		s.userCommands.EXPECT().ChangeRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, user.ErrSelfRoleChange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/users/"+s.sessions.admin.UserID.String()+"/role", map[string]any{"role": "user"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
