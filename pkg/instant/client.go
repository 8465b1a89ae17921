package instant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCurrencyURL = "https://open.er-api.com/v6/latest/"
	DefaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultWeatherURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultTimeout     = 10 * time.Second

	forecastDays = 3
	currentVars  = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"
	dailyVars    = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code"
)

// Client calls the currency and weather endpoints.
type Client struct {
	currencyURL string
	geocodeURL  string
	weatherURL  string
	httpClient  *http.Client
}

// Ensure Client implements IClient interface
var _ IClient = (*Client)(nil)

// New creates a client with the public default endpoints.
func New() *Client {
	return &Client{
		currencyURL: DefaultCurrencyURL,
		geocodeURL:  DefaultGeocodeURL,
		weatherURL:  DefaultWeatherURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
	}
}

// WithCurrencyURL overrides the rates endpoint. The base code is appended to it.
func (c *Client) WithCurrencyURL(u string) *Client {
	if u != "" {
		c.currencyURL = strings.TrimRight(u, "/") + "/"
	}
	return c
}

// WithGeocodeURL overrides the geocoding endpoint.
func (c *Client) WithGeocodeURL(u string) *Client {
	if u != "" {
		c.geocodeURL = u
	}
	return c
}

// WithWeatherURL overrides the forecast endpoint.
func (c *Client) WithWeatherURL(u string) *Client {
	if u != "" {
		c.weatherURL = u
	}
	return c
}

// WithHTTPClient sets the HTTP client, for proxies and tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Rates fetches the latest exchange rates for base.
func (c *Client) Rates(ctx context.Context, base string) (*Rates, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if len(base) != 3 {
		return nil, fmt.Errorf("invalid currency code %q", base)
	}

	var rates Rates
	if err := c.getJSON(ctx, c.currencyURL+url.PathEscape(base), &rates); err != nil {
		return nil, err
	}
	if !strings.EqualFold(rates.Result, "success") {
		return nil, fmt.Errorf("currency API error: %s", rates.ErrorType)
	}
	if len(rates.Rates) == 0 {
		rates.Rates = rates.LegacyRates
	}
	if len(rates.Rates) == 0 {
		return nil, fmt.Errorf("currency API returned no rates")
	}
	return &rates, nil
}

// Geocode resolves a place name to its best match. Returns nil when nothing matched.
func (c *Client) Geocode(ctx context.Context, place string) (*Place, error) {
	q := url.Values{}
	q.Set("name", place)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// Forecast fetches current conditions and a three day outlook.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", currentVars)
	q.Set("daily", dailyVars)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timezone", "auto")

	var f Forecast
	if err := c.getJSON(ctx, c.weatherURL+"?"+q.Encode(), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
