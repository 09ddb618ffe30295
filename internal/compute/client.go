package compute

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

// Result - сводные поля ответа внешнего расчетного сервиса.
// Полная сетка концентраций потребляется слоем отображения напрямую,
// ядру нужны только итоговые характеристики.
type Result struct {
	SpillID          uuid.UUID `json:"spill_id"`
	SimulationHours  int       `json:"simulation_hours"`
	MaxConcentration float64   `json:"max_concentration"` // мг/л
	AffectedAreaKm2  float64   `json:"affected_area_km2"`
}

// Client определяет контракт внешнего сервиса физического расчета дисперсии
type Client interface {
	Calculate(ctx context.Context, spillID uuid.UUID, hours int) (*Result, error)
}

// HTTPClient - реализация Client поверх HTTP с ограниченным временем ожидания
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Calculate запускает расчет дисперсии для инцидента на заданное число часов
func (c *HTTPClient) Calculate(ctx context.Context, spillID uuid.UUID, hours int) (*Result, error) {
	url := fmt.Sprintf("%s/spills/%s/calculate?hours=%d", c.baseURL, spillID, hours)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("compute client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("compute client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("compute client: unexpected status code %d", resp.StatusCode)
	}

	result := &Result{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("compute client: failed to decode response: %w", err)
	}
	return result, nil
}
