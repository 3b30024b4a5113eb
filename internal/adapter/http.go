package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

const (
	encryptPath   = "/encrypt"
	traceIDHeader = "X-Trace-ID"
)

type httpCipherAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCipherAdapter constructs an HTTP/REST implementation of
// [CipherAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCipherAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CipherAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpCipherAdapter{client: client, logger: logger}, nil
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

// Encrypt implements [CipherAdapter]. It POSTs {"password": ...} to
// POST /encrypt and returns the encrypted_password field of the response.
// A trace id found in ctx is forwarded in the X-Trace-ID header.
func (h *httpCipherAdapter) Encrypt(ctx context.Context, password string) (string, error) {
	var result models.EncryptionResponse

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EncryptionRequest{Password: password}).
		SetResult(&result)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Post(encryptPath)
	if err != nil {
		return "", fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Dur("duration", resp.Time()).
		Msg("encrypt response received")

	if result.EncryptedPassword == "" {
		return "", fmt.Errorf("%w: empty encrypted_password", ErrUnexpectedResponse)
	}

	return result.EncryptedPassword, nil
}
