//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/auth"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/handler/api"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/cookie"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/tests/common/builder"
	"gaming-zone-booking/tests/common/httptest"
	"gaming-zone-booking/tests/common/testutil"
	commandsmock "gaming-zone-booking/tests/mock/commands"
	queriesmock "gaming-zone-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockUsers    *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	sessions     *sessions
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.sessions = newSessions(s.T(), s.mockCtrl)

	h := api.NewAuthHandler(s.mockCommands, s.mockUsers, s.mockQueries, config.NewTestConfig())
	s.router.POST("/auth/register", h.Register)
	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/logout", h.Logout)
	s.router.GET("/auth/me", s.sessions.auth.RequireAuth(), h.Me)
	s.router.PATCH("/auth/me", s.sessions.auth.RequireAuth(), h.UpdateMe)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()
	created := builder.NewUserBuilder().BuildStored()

	s.Run("success: returns 201 with the new user", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("test@example.com", response.Email)
		s.Equal("user", response.Role)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/auth/me"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
			{name: "name over 100 chars", mutate: testutil.Field("name", strings.Repeat("n", 101)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"email taken", auth.ErrEmailTaken, http.StatusConflict, "Email already registered"},
			{"weak password", user.ErrPasswordTooWeak, http.StatusUnprocessableEntity, ""},
			{"bad phone", user.ErrInvalidPhone, http.StatusUnprocessableEntity, ""},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildStored()
	result := &commands.LoginResult{
		User:        returnUser,
		AccessToken: "test-jwt-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	s.Run("success: returns token and sets the cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("test@example.com", response.User.Email)
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	view := builder.NewUserBuilder().BuildView()

	s.Run("success: returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.sessions.player.UserID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userToken)

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a bad token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, user.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *AuthHandlerTestSuite) TestUpdateMe() {
	url := "/auth/me"

	s.Run("success: updates name and phone", func() {
		updated := builder.NewUserBuilder().WithName("Riya Sen").WithPhone("9123456780").BuildStored()
		s.mockUsers.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a user.Actor, p commands.ProfilePatch) (*user.User, error) {
				s.Equal(s.sessions.player.UserID, a.UserID)
				s.Require().NotNil(p.Name)
				s.Require().NotNil(p.Phone)
				s.Equal("Riya Sen", *p.Name)
				s.Equal("9123456780", *p.Phone)
				return updated, nil
			})

		body := map[string]any{"name": "Riya Sen", "phone": "9123456780"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, userToken)

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Riya Sen", response.Name)
		s.Equal("9123456780", response.Phone)
	})

	s.Run("success: omitted fields stay untouched", func() {
		s.mockUsers.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Actor, p commands.ProfilePatch) (*user.User, error) {
				s.Nil(p.Name)
				s.Require().NotNil(p.Phone)
				return builder.NewUserBuilder().BuildStored(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "9000000001"}, userToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 on an empty name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": ""}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 on a malformed phone", func() {
		s.mockUsers.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, user.ErrInvalidPhone)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"phone": "12ab"}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockUsers.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, user.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Ghost"}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
