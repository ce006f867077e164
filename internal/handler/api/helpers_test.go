//go:build unit

package api_test

import (
	"testing"

	"gaming-zone-booking/internal/domain/user"
	reqdto "gaming-zone-booking/internal/handler/dto/request"
	"gaming-zone-booking/internal/handler/middleware"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/tests/common/builder"
	usecasemock "gaming-zone-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

// sessions wires a token validator that knows one player and one admin.
type sessions struct {
	player user.Actor
	admin  user.Actor
	auth   *middleware.AuthMiddleware
}

func newSessions(t *testing.T, ctrl *gomock.Controller) *sessions {
	t.Helper()
	require.NoError(t, reqdto.RegisterValidators())

	s := &sessions{
		player: builder.NewUserBuilder().BuildActor(),
		admin:  builder.NewUserBuilder().AsAdmin().BuildActor(),
	}
	v := usecasemock.NewMockTokenValidator(ctrl)
	v.EXPECT().ValidateToken(userToken).Return(s.player, nil).AnyTimes()
	v.EXPECT().ValidateToken(adminToken).Return(s.admin, nil).AnyTimes()
	v.EXPECT().ValidateToken(gomock.Any()).Return(user.Actor{}, errs.New("invalid token")).AnyTimes()
	s.auth = middleware.NewAuthMiddleware(v)
	return s
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
