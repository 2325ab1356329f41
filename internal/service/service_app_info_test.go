package service

import (
	"context"
	"testing"

	"github.com/paulobof/sistema-bancario/internal/config"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.NewLogger("test"))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.NewLogger("test"))
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
