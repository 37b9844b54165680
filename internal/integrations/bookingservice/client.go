package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с backend booking-сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента backend-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTimes получает занятые слоты
// Если date не пуст, выдача ограничивается указанной датой
func (c *Client) GetTimes(ctx context.Context, date string) ([]string, error) {
	endpoint := c.baseURL + "/times"
	if date != "" {
		endpoint += "?date=" + url.QueryEscape(date)
	}

	var times []string
	if err := c.getJSON(ctx, endpoint, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// GetAvailableSlots получает слоты даты с признаком занятости
func (c *Client) GetAvailableSlots(ctx context.Context, date string) ([]Slot, error) {
	endpoint := c.baseURL + "/available-slots?date=" + url.QueryEscape(date)

	var slots []Slot
	if err := c.getJSON(ctx, endpoint, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateBooking пересылает запрос на бронирование в backend
// Бизнес-отказ backend (4xx) возвращается как *APIError с исходным
// статусом и сообщением
func (c *Client) CreateBooking(ctx context.Context, bookReq *BookRequest) (*BookResponse, error) {
	body, err := json.Marshal(bookReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/book", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CreateBooking: backend request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, c.apiError(resp)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var bookResp BookResponse
	if err := json.NewDecoder(resp.Body).Decode(&bookResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &bookResp, nil
}

// getJSON выполняет GET-запрос и декодирует успешный ответ в dst
func (c *Client) getJSON(ctx context.Context, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("GET %s: backend request failed: %v", endpoint, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return c.apiError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// apiError конвертирует 4xx-ответ backend в *APIError
func (c *Client) apiError(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		errResp.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
