package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/utils"
	"github.com/MKhiriev/go-trace-warnings/models"
)

const (
	discoveryPath  = "/version/v1/twp/country/{region}/hour"
	downloadPath   = "/version/v1/twp/country/{region}/hour/{id}"
	submissionPath = "/version/v1/twp/submission"

	emptyPackageHeader = "cwa-empty-pkg"

	userAgent  = "go-trace-warnings"
	retryCount = 2
)

type httpWarningPackageAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPWarningPackageAdapter constructs an HTTP/REST implementation of
// [WarningPackageAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPWarningPackageAdapter(adapterCfg config.Adapter, logger *logger.Logger) (WarningPackageAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    adapterCfg.RequestTimeout,
		UserAgent:  userAgent,
		RetryCount: retryCount,
	})

	return &httpWarningPackageAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// discoveryResponse is the body of the discovery endpoint. Both bounds are
// inclusive; a server without packages answers with zeros.
type discoveryResponse struct {
	Oldest int64 `json:"oldest"`
	Latest int64 `json:"latest"`
}

// Discover implements [WarningPackageAdapter]. It GETs
// GET /version/v1/twp/country/{region}/hour and expands the returned
// [oldest, latest] range into the list of available package hours.
func (h *httpWarningPackageAdapter) Discover(ctx context.Context, region string) (models.DiscoveryResult, error) {
	var body discoveryResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("region", strings.ToLower(region)).
		SetResult(&body).
		Get(discoveryPath)
	if err != nil {
		return models.DiscoveryResult{}, fmt.Errorf("discovery request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiscoveryResult{}, err
	}

	if body.Oldest == 0 && body.Latest == 0 {
		return models.DiscoveryResult{}, nil
	}
	if body.Oldest <= 0 || body.Latest < body.Oldest {
		return models.DiscoveryResult{}, fmt.Errorf("%w: oldest=%d latest=%d", ErrInvalidDiscovery, body.Oldest, body.Latest)
	}

	ids := make([]int64, 0, body.Latest-body.Oldest+1)
	for id := body.Oldest; id <= body.Latest; id++ {
		ids = append(ids, id)
	}

	return models.DiscoveryResult{AvailableIDs: ids, OldestID: body.Oldest}, nil
}

// Download implements [WarningPackageAdapter]. It GETs
// GET /version/v1/twp/country/{region}/hour/{id}. A response carrying the
// cwa-empty-pkg header is reported as empty without reading the body;
// otherwise the body is unwrapped from its signed envelope.
func (h *httpWarningPackageAdapter) Download(ctx context.Context, region string, id int64) (models.DownloadedPackage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"region": strings.ToLower(region),
			"id":     strconv.FormatInt(id, 10),
		}).
		Get(downloadPath)
	if err != nil {
		return models.DownloadedPackage{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadedPackage{}, err
	}

	pkg := models.DownloadedPackage{ETag: parseETag(resp.Header().Get("ETag"))}
	if resp.Header().Get(emptyPackageHeader) == "1" {
		pkg.IsEmpty = true
		return pkg, nil
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		return models.DownloadedPackage{}, err
	}
	pkg.Payload = env.Payload
	pkg.Signature = env.Signature

	return pkg, nil
}

// Submit implements [WarningPackageAdapter]. It sets req.Length and POSTs the
// reports to POST /version/v1/twp/submission.
func (h *httpWarningPackageAdapter) Submit(ctx context.Context, req models.SubmissionRequest) error {
	req.Length = len(req.Reports)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(submissionPath)
	if err != nil {
		return fmt.Errorf("submission request: %w", err)
	}

	return mapHTTPError(resp)
}

// parseETag strips the weak validator prefix and quotes of an ETag header.
func parseETag(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "W/")
	return strings.Trim(raw, `"`)
}
