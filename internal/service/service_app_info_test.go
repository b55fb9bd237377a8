package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	assert.Equal(t, "1.4.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "abc123", svc.BuildInfo().BuildCommit())
}

func TestAppInfoService_UnsetBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "2.0.0", svc.GetAppVersion(ctx))
}
