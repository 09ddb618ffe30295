package environment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

// WeatherReading - ответ погодного сервиса для точки
type WeatherReading struct {
	Temperature   float64 `json:"temperature"`    // °C
	WindSpeed     float64 `json:"wind_speed"`     // м/с
	WindDirection float64 `json:"wind_direction"` // градусы
}

// TideReading - ответ приливного сервиса для точки
type TideReading struct {
	WaterLevel       float64 `json:"water_level"` // метры
	CurrentSpeed     float64 `json:"current_speed"`
	CurrentDirection float64 `json:"current_direction"`
}

// WeatherClient определяет контракт погодного сервиса
type WeatherClient interface {
	CurrentWeather(ctx context.Context, loc models.Location) (*WeatherReading, error)
}

// TideClient определяет контракт приливного сервиса
type TideClient interface {
	CurrentTide(ctx context.Context, loc models.Location) (*TideReading, error)
}

// HTTPWeatherClient - реализация WeatherClient поверх HTTP
type HTTPWeatherClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPWeatherClient(baseURL string, timeout time.Duration) *HTTPWeatherClient {
	return &HTTPWeatherClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPWeatherClient) CurrentWeather(ctx context.Context, loc models.Location) (*WeatherReading, error) {
	reading := &WeatherReading{}
	if err := getJSON(ctx, c.httpClient, c.baseURL+"/weather/current", loc, reading); err != nil {
		return nil, fmt.Errorf("weather client: %w", err)
	}
	return reading, nil
}

// HTTPTideClient - реализация TideClient поверх HTTP
type HTTPTideClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPTideClient(baseURL string, timeout time.Duration) *HTTPTideClient {
	return &HTTPTideClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPTideClient) CurrentTide(ctx context.Context, loc models.Location) (*TideReading, error) {
	reading := &TideReading{}
	if err := getJSON(ctx, c.httpClient, c.baseURL+"/tides/current", loc, reading); err != nil {
		return nil, fmt.Errorf("tide client: %w", err)
	}
	return reading, nil
}

// getJSON выполняет GET с координатами в query и декодирует JSON-ответ
func getJSON(ctx context.Context, client *http.Client, rawURL string, loc models.Location, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
