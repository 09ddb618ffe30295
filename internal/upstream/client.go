package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

// Client определяет контракт внешней коллекции инцидентов
type Client interface {
	ListAll(ctx context.Context) ([]models.SpillPatch, error)
	ListActive(ctx context.Context) ([]models.SpillPatch, error)
	Create(ctx context.Context, spill *models.Spill) (*models.SpillPatch, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SpillStatus) error
}

// HTTPClient - реализация Client поверх HTTP
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

// ListAll возвращает все инциденты коллекции независимо от статуса
func (c *HTTPClient) ListAll(ctx context.Context) ([]models.SpillPatch, error) {
	return c.list(ctx, c.baseURL+"/spills/all")
}

// ListActive возвращает только активные инциденты
func (c *HTTPClient) ListActive(ctx context.Context) ([]models.SpillPatch, error) {
	return c.list(ctx, c.baseURL+"/spills")
}

func (c *HTTPClient) list(ctx context.Context, url string) ([]models.SpillPatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream client: unexpected status code %d", resp.StatusCode)
	}

	var spills []models.SpillPatch
	if err := json.NewDecoder(resp.Body).Decode(&spills); err != nil {
		return nil, fmt.Errorf("upstream client: failed to decode spill list: %w", err)
	}
	return spills, nil
}

// Create регистрирует инцидент в коллекции и возвращает авторитетную
// серверную копию (с подтвержденным id)
func (c *HTTPClient) Create(ctx context.Context, spill *models.Spill) (*models.SpillPatch, error) {
	body, err := json.Marshal(spill)
	if err != nil {
		return nil, fmt.Errorf("upstream client: failed to marshal spill: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/spills", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("upstream client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream client: unexpected status code %d", resp.StatusCode)
	}

	created := &models.SpillPatch{}
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, fmt.Errorf("upstream client: failed to decode created spill: %w", err)
	}
	return created, nil
}

// UpdateStatus меняет статус инцидента в коллекции
func (c *HTTPClient) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SpillStatus) error {
	u := fmt.Sprintf("%s/spills/%s/status?status=%s", c.baseURL, id, url.QueryEscape(string(status)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, nil)
	if err != nil {
		return fmt.Errorf("upstream client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("upstream client: unexpected status code %d", resp.StatusCode)
	}
	return nil
}
