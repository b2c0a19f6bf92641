package capi

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"capirelay/internal/config"
	"capirelay/internal/constants"
	"capirelay/internal/logger"
	"capirelay/pkg/errors"
	"capirelay/pkg/tracing"
)

// Client delivers conversion events to the Graph API events endpoint. It
// performs exactly one attempt per event; when delivery fails the webhook
// caller gets a server error and its own redelivery is the recovery path.
type Client struct {
	graphURL      string
	pixelID       string
	accessToken   string
	testEventCode string
	httpClient    *http.Client
	logger        logger.Logger
}

func NewClient(cfg config.MetaConfig, log logger.Logger) *Client {
	graphURL := cfg.GraphURL
	if graphURL == "" {
		graphURL = constants.DefaultGraphURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultDeliveryTimeout
	}

	return &Client{
		graphURL:      graphURL,
		pixelID:       cfg.PixelID,
		accessToken:   cfg.AccessToken,
		testEventCode: cfg.TestEventCode,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        log,
	}
}

func (c *Client) Send(ctx context.Context, event Event) error {
	ctx, span := tracing.GetTracer("relay-service").Start(ctx, "capi.send")
	defer span.End()

	envelope := Envelope{
		Data:          []Event{event},
		TestEventCode: c.testEventCode,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.ErrInternal.WithCause(fmt.Errorf("failed to encode envelope: %w", err))
	}

	endpoint, err := url.Parse(fmt.Sprintf("%s/%s/events", c.graphURL, c.pixelID))
	if err != nil {
		return errors.ErrInternal.WithCause(fmt.Errorf("invalid graph url: %w", err))
	}
	query := endpoint.Query()
	query.Set("access_token", c.accessToken)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.ErrInternal.WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		sanitized := sanitizeTransportError(err)
		c.logger.ErrorwCtx(ctx, "Graph API request failed",
			"event_name", event.EventName,
			"event_id", event.EventID,
			"error", sanitized,
		)
		return errors.Wrap(sanitized, errors.ErrDeliveryFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constants.HTTPStatusOKMin || resp.StatusCode >= constants.HTTPStatusOKMax {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, constants.MaxErrorBodyBytes))
		c.logger.ErrorwCtx(ctx, "Graph API rejected conversion event",
			"event_name", event.EventName,
			"event_id", event.EventID,
			"status", resp.StatusCode,
			"response", string(respBody),
		)
		return errors.ErrDeliveryFailed.WithDetail("status", resp.StatusCode)
	}

	c.logger.InfowCtx(ctx, "Conversion event forwarded",
		"event_name", event.EventName,
		"event_id", event.EventID,
	)
	return nil
}

// sanitizeTransportError strips the request URL from transport errors. The
// URL carries the access token as a query parameter, so the raw error must
// never reach a log line or response.
func sanitizeTransportError(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		redacted := urlErr.URL
		if parsed, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			parsed.RawQuery = ""
			redacted = parsed.String()
		}
		return fmt.Errorf("%s %s: %w", urlErr.Op, redacted, urlErr.Err)
	}
	return err
}
