package auth

import (
	"context"
	"net/http"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// RefreshPath is the token refresh endpoint.
const RefreshPath = "/api/auth/refresh"

// NewAPIRefresher returns a [RefreshFunc] calling POST /api/auth/refresh.
// The request is anonymous: the expired access token is not sent.
func NewAPIRefresher(exec adapter.RequestExecutor) RefreshFunc {
	return func(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
		return adapter.Request[models.RefreshResponse](ctx, exec, models.RequestSpec{
			Method:    http.MethodPost,
			Path:      RefreshPath,
			Body:      models.RefreshRequest{RefreshToken: refreshToken},
			Anonymous: true,
		})
	}
}
