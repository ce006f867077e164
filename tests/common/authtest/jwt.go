//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(actor)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(actor)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
