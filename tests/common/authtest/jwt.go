//go:build e2e

package authtest

import (
	"testing"
	"time"

	"price-in-time/internal/pkg/config"
	"price-in-time/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

func token(t *testing.T, cfg config.JWTConfig, subject, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	tok, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return tok
}

func AdminToken(t *testing.T, cfg config.JWTConfig) string {
	return token(t, cfg, "admin@example.com", jwt.RoleAdmin)
}

func ViewerToken(t *testing.T, cfg config.JWTConfig) string {
	return token(t, cfg, "viewer@example.com", jwt.RoleViewer)
}
