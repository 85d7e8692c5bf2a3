package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/ozerovd/go-sale-keeper/internal/config"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/utils"
	"github.com/ozerovd/go-sale-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		logger: log.GetChildLogger(),
	}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the operator credentials to
// POST /api/v1/auth/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the operator credentials to
// POST /api/v1/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// SubmitSale implements [ServerAdapter]. It POSTs one sale to
// POST /api/v1/sales and decodes the acknowledgment. A 422 response maps to
// [ErrSaleRejected]; 409 and other 4xx map to their respective sentinels, all
// of which [IsRejection] recognises.
func (h *httpServerAdapter) SubmitSale(ctx context.Context, req models.SubmitSaleRequest) (models.SaleAck, error) {
	var ack models.SaleAck

	resp, err := h.authorizedRequest(ctx).
		SetBody(req).
		SetResult(&ack).
		Post("/api/v1/sales")
	if err != nil {
		return models.SaleAck{}, fmt.Errorf("submit sale request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaleAck{}, err
	}

	if ack.Duplicate {
		h.logger.Info().Str("client_ref", ack.ClientRef).Int64("server_id", ack.ServerID).
			Msg("server already had this sale, treating as success")
	}

	return ack, nil
}

// SubmitPayment implements [ServerAdapter]. It POSTs one payment to
// POST /api/v1/sales/{clientRef}/payments.
func (h *httpServerAdapter) SubmitPayment(ctx context.Context, clientRef string, req models.SubmitPaymentRequest) (models.PaymentAck, error) {
	var ack models.PaymentAck

	resp, err := h.authorizedRequest(ctx).
		SetPathParam("ref", clientRef).
		SetBody(req).
		SetResult(&ack).
		Post("/api/v1/sales/{ref}/payments")
	if err != nil {
		return models.PaymentAck{}, fmt.Errorf("submit payment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PaymentAck{}, err
	}

	return ack, nil
}

// ListProducts implements [ServerAdapter]. It GETs one catalog page from
// GET /api/v1/products.
func (h *httpServerAdapter) ListProducts(ctx context.Context, limit, offset int) (models.ProductListResponse, error) {
	var page models.ProductListResponse

	resp, err := h.authorizedRequest(ctx).
		SetQueryParams(map[string]string{
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}).
		SetResult(&page).
		Get("/api/v1/products")
	if err != nil {
		return models.ProductListResponse{}, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductListResponse{}, err
	}

	return page, nil
}

// ListClients implements [ServerAdapter]. It GETs one directory page from
// GET /api/v1/clients.
func (h *httpServerAdapter) ListClients(ctx context.Context, limit, offset int) (models.ClientListResponse, error) {
	var page models.ClientListResponse

	resp, err := h.authorizedRequest(ctx).
		SetQueryParams(map[string]string{
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}).
		SetResult(&page).
		Get("/api/v1/clients")
	if err != nil {
		return models.ClientListResponse{}, fmt.Errorf("list clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClientListResponse{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) authorizedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}
