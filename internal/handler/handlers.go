package handler

import (
	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/handler/http"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/metrics"
	"github.com/MKhiriev/go-trace-warnings/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. The control API
// is optional, so an empty address is reported with errNoHandlersAreCreated
// and the caller decides whether that is fatal.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Msg("creating new handlers...")
	return &Handlers{HTTP: http.NewHandler(services, m, logger)}, nil
}
