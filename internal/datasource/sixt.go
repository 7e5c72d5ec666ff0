package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/rental-upsell/internal/metrics"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// DefaultSixtBaseURL is the public hackathon endpoint of the Sixt booking API.
const DefaultSixtBaseURL = "https://hackatum25.sixt.io"

// SixtClient implements Source against the Sixt booking API.
type SixtClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// SixtOption configures the SixtClient.
type SixtOption func(*SixtClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) SixtOption {
	return func(c *SixtClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every API call goes
// through Wait() first.
func WithRateLimiter(r *RateLimiter) SixtOption {
	return func(c *SixtClient) {
		c.rateLimiter = r
	}
}

// NewSixtClient creates a new Sixt booking API client. An empty baseURL
// selects DefaultSixtBaseURL.
func NewSixtClient(baseURL string, opts ...SixtOption) *SixtClient {
	if baseURL == "" {
		baseURL = DefaultSixtBaseURL
	}
	c := &SixtClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateBooking implements Source.CreateBooking.
func (c *SixtClient) CreateBooking(ctx context.Context) (domain.Booking, error) {
	var w BookingWire
	if err := c.do(ctx, "create_booking", http.MethodPost, "/api/booking", &w); err != nil {
		return domain.Booking{}, err
	}
	return ToBooking(&w), nil
}

// healthCheckBookingID is looked up by Ping. The API answers 404 for it,
// which proves the service is reachable without creating a booking.
const healthCheckBookingID = "healthcheck"

// Ping implements Pinger. The request goes through the rate limiter like
// any other call.
func (c *SixtClient) Ping(ctx context.Context) error {
	var w BookingWire
	err := c.do(ctx, "ping", http.MethodGet, bookingPath(healthCheckBookingID), &w)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("pinging sixt API: %w", err)
	}
	return nil
}

// GetBooking implements Source.GetBooking.
func (c *SixtClient) GetBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	var w BookingWire
	if err := c.do(ctx, "get_booking", http.MethodGet, bookingPath(bookingID), &w); err != nil {
		return domain.Booking{}, err
	}
	return ToBooking(&w), nil
}

// GetAvailableVehicles implements Source.GetAvailableVehicles.
func (c *SixtClient) GetAvailableVehicles(ctx context.Context, bookingID string) ([]domain.Vehicle, error) {
	var resp VehiclesResponse
	if err := c.do(ctx, "get_vehicles", http.MethodGet, bookingPath(bookingID, "vehicles"), &resp); err != nil {
		return nil, err
	}
	return ToVehicles(resp.Deals), nil
}

// GetAvailableProtections implements Source.GetAvailableProtections.
func (c *SixtClient) GetAvailableProtections(
	ctx context.Context,
	bookingID string,
) ([]domain.ProtectionPackage, error) {
	var resp ProtectionsResponse
	if err := c.do(ctx, "get_protections", http.MethodGet, bookingPath(bookingID, "protections"), &resp); err != nil {
		return nil, err
	}
	return ToProtections(resp.ProtectionPackages), nil
}

// GetAvailableAddons implements Source.GetAvailableAddons.
func (c *SixtClient) GetAvailableAddons(ctx context.Context, bookingID string) ([]domain.Addon, error) {
	var resp AddonsResponse
	if err := c.do(ctx, "get_addons", http.MethodGet, bookingPath(bookingID, "addons"), &resp); err != nil {
		return nil, err
	}
	return ToAddons(resp.Addons), nil
}

// AssignVehicle books the given vehicle for the booking.
func (c *SixtClient) AssignVehicle(ctx context.Context, bookingID, vehicleID string) (domain.Booking, error) {
	var w BookingWire
	if err := c.do(ctx, "assign_vehicle", http.MethodPost, bookingPath(bookingID, "vehicles", vehicleID), &w); err != nil {
		return domain.Booking{}, err
	}
	return ToBooking(&w), nil
}

// AssignProtection adds the given protection package to the booking.
func (c *SixtClient) AssignProtection(ctx context.Context, bookingID, packageID string) (domain.Booking, error) {
	var w BookingWire
	path := bookingPath(bookingID, "protections", packageID)
	if err := c.do(ctx, "assign_protection", http.MethodPost, path, &w); err != nil {
		return domain.Booking{}, err
	}
	return ToBooking(&w), nil
}

// CompleteBooking finalizes the booking.
func (c *SixtClient) CompleteBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	var w BookingWire
	if err := c.do(ctx, "complete_booking", http.MethodPost, bookingPath(bookingID, "complete"), &w); err != nil {
		return domain.Booking{}, err
	}
	return ToBooking(&w), nil
}

func bookingPath(bookingID string, parts ...string) string {
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, url.PathEscape(bookingID))
	for _, p := range parts {
		segs = append(segs, url.PathEscape(p))
	}
	return "/api/booking/" + strings.Join(segs, "/")
}

// do performs one API call and decodes the JSON body into out. A 204 or an
// empty body leaves out untouched.
func (c *SixtClient) do(ctx context.Context, op, method, path string, out any) error {
	metrics.DataSourceCallsTotal.WithLabelValues(op).Inc()

	err := c.call(ctx, method, path, out)
	if err != nil && !errors.Is(err, ErrNotFound) {
		metrics.DataSourceErrorsTotal.WithLabelValues(op).Inc()
	}
	return err
}

func (c *SixtClient) call(ctx context.Context, method, path string, out any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrQuotaExhausted) {
				metrics.DataSourceQuotaHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sixt API error (status %d): %s", resp.StatusCode, errorDetail(resp, data))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}

// errorDetail returns the response body when it is JSON and the status text
// otherwise.
func errorDetail(resp *http.Response, data []byte) string {
	if json.Valid(data) && len(bytes.TrimSpace(data)) > 0 {
		return string(bytes.TrimSpace(data))
	}
	return http.StatusText(resp.StatusCode)
}
