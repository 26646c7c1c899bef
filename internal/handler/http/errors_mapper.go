package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/internal/service"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
)

type errorStatus struct {
	target error
	status int
}

var errorStatuses = []errorStatus{
	// checked in order: retryable store errors also wrap their query error
	{store.ErrRetryable, http.StatusServiceUnavailable},

	{service.ErrDownloadAlreadyRunning, http.StatusConflict},
	{service.ErrInvalidTransmissionRiskLevel, http.StatusBadRequest},
	{service.ErrEmptyLocationID, http.StatusBadRequest},
	{service.ErrEmptyCheckinStart, http.StatusBadRequest},
	{service.ErrCheckinEndsTooEarly, http.StatusBadRequest},
	{service.ErrIdentification, http.StatusBadGateway},
	{service.ErrPackageDecoding, http.StatusBadGateway},

	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrMalformedEnvelope, http.StatusBadGateway},
	{adapter.ErrMalformedPackage, http.StatusBadGateway},
	{adapter.ErrInvalidDiscovery, http.StatusBadGateway},
	{adapter.ErrTooManyRequests, http.StatusServiceUnavailable},
	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable},

	{store.ErrCheckinNotSaved, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
