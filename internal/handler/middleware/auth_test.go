//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/handler/middleware"
	"gaming-zone-booking/internal/pkg/cookie"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/tests/common/builder"
	usecasemock "gaming-zone-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	player := builder.NewUserBuilder().BuildActor()
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()

	v := usecasemock.NewMockTokenValidator(ctrl)
	v.EXPECT().ValidateToken("player").Return(player, nil).AnyTimes()
	v.EXPECT().ValidateToken("admin").Return(admin, nil).AnyTimes()
	v.EXPECT().ValidateToken(gomock.Any()).Return(user.Actor{}, errs.New("expired")).AnyTimes()
	m := middleware.NewAuthMiddleware(v)

	echo := func(c *gin.Context) {
		a, ok := middleware.GetActor(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, a.Role.String())
	}

	r := gin.New()
	r.GET("/me", m.RequireAuth(), echo)
	r.GET("/admin", m.RequireAuth(), m.RequireAdmin(), echo)
	r.GET("/optional", m.OptionalAuth(), echo)
	r.GET("/misconfigured", m.RequireAdmin(), echo)

	tests := []struct {
		name     string
		path     string
		header   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "bearer header", path: "/me", header: "Bearer player", wantCode: http.StatusOK, wantBody: "user"},
		{name: "cookie", path: "/me", cookie: "player", wantCode: http.StatusOK, wantBody: "user"},
		{name: "cookie wins over header", path: "/me", cookie: "admin", header: "Bearer player", wantCode: http.StatusOK, wantBody: "admin"},
		{name: "no token", path: "/me", wantCode: http.StatusUnauthorized},
		{name: "non bearer scheme", path: "/me", header: "Basic player", wantCode: http.StatusUnauthorized},
		{name: "invalid token", path: "/me", header: "Bearer forged", wantCode: http.StatusUnauthorized},
		{name: "admin route as admin", path: "/admin", header: "Bearer admin", wantCode: http.StatusOK, wantBody: "admin"},
		{name: "admin route as player", path: "/admin", header: "Bearer player", wantCode: http.StatusForbidden},
		{name: "optional without token", path: "/optional", wantCode: http.StatusOK, wantBody: "anonymous"},
		{name: "optional with bad token", path: "/optional", header: "Bearer forged", wantCode: http.StatusOK, wantBody: "anonymous"},
		{name: "optional with token", path: "/optional", header: "Bearer player", wantCode: http.StatusOK, wantBody: "user"},
		{name: "admin check without auth", path: "/misconfigured", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
