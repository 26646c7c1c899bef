package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.Server{HTTPAddress: "localhost:8090"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.True(t, IsDisabled(err))
	assert.False(t, IsDisabled(errors.New("other")))
}
