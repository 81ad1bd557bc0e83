//go:build unit || e2e

package authtest

import (
	"testing"

	"rentmarket/internal/domain/user"
	"rentmarket/internal/pkg/config"
	"rentmarket/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenFor signs an access token the way the external identity provider would.
func TokenFor(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := jwt.SignForTest(cfg.Secret, userID, role)
	require.NoError(t, err, "failed to sign test token")
	return token
}
