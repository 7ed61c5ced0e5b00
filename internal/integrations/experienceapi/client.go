package experienceapi

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

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Операции для метрик
const (
	opListExperiences = "list_experiences"
	opGetExperience   = "get_experience"
	opValidatePromo   = "validate_promo"
	opCreateBooking   = "create_booking"
)

// Исходы запросов для метрик
const (
	outcomeOK       = "ok"
	outcomeNetwork  = "network_error"
	outcomeRejected = "rejected"
	outcomeInvalid  = "invalid_response"
)

const maxErrorBodySize = 4 << 10

// Observer получает результат каждого запроса к API
type Observer interface {
	ObserveUpstream(operation, outcome string, duration time.Duration)
}

// Client клиент удаленного API каталога, промокодов и бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента
// timeout = 0 означает отсутствие таймаута на уровне клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithObserver подключает сбор метрик по запросам
func (c *Client) WithObserver(observer Observer) *Client {
	c.observer = observer
	return c
}

// ListExperiences получает полный список впечатлений
func (c *Client) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	var items []Experience
	if err := c.do(ctx, opListExperiences, http.MethodGet, "/experiences", nil, &items); err != nil {
		return nil, err
	}

	result := make([]domain.Experience, 0, len(items))
	for i := range items {
		result = append(result, items[i].ToDomain())
	}
	return result, nil
}

// GetExperience получает впечатление по ID
func (c *Client) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	path := "/experiences/" + url.PathEscape(id)

	var item Experience
	if err := c.do(ctx, opGetExperience, http.MethodGet, path, nil, &item); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	exp := item.ToDomain()
	return &exp, nil
}

// ValidatePromo проверяет промокод
// Невалидный код - это не ошибка: возвращается PromoOutcome с Valid=false
func (c *Client) ValidatePromo(ctx context.Context, code string) (*domain.PromoOutcome, error) {
	var validation PromoValidation
	if err := c.do(ctx, opValidatePromo, http.MethodPost, "/promo/validate", PromoRequest{Code: code}, &validation); err != nil {
		return nil, err
	}

	outcome := validation.ToDomain()
	return &outcome, nil
}

// CreateBooking создает бронирование
// Отказ с сообщением возвращается как *RejectionError, отсутствие ответа - как ErrNetwork
func (c *Client) CreateBooking(ctx context.Context, req *BookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, opCreateBooking, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}

	if booking.ID == "" {
		return nil, fmt.Errorf("%w: no booking data received from server", ErrInvalidResponse)
	}

	return &booking, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, outcomeNetwork, start)
		c.log.Warn("ExperienceAPI: %s %s - no response: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := readStatusError(resp)
		if errors.Is(statusErr, ErrRejected) {
			c.observe(operation, outcomeRejected, start)
		} else {
			c.observe(operation, outcomeInvalid, start)
		}
		c.log.Warn("ExperienceAPI: %s %s - status %d", method, path, resp.StatusCode)
		return statusErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.observe(operation, outcomeInvalid, start)
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	c.observe(operation, outcomeOK, start)
	return nil
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(operation, outcome, time.Since(start))
}

// readStatusError разбирает тело ответа с ошибкой
// Если сервер прислал {message}, возвращается *RejectionError
func readStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
		return &RejectionError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

// statusCode извлекает HTTP-код из ошибки клиента, 0 если кода нет
func statusCode(err error) int {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.StatusCode
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
