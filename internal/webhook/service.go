package webhook

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"capirelay/internal/capi"
	"capirelay/internal/logger"
	"capirelay/internal/signature"
	"capirelay/pkg/errors"
	"capirelay/pkg/metrics"
	"capirelay/pkg/tracing"
)

// Dispatcher delivers an assembled conversion event to the destination.
type Dispatcher interface {
	Send(ctx context.Context, event capi.Event) error
}

// Service runs the pipeline: verify signature, parse, map topic, normalize
// user data, dispatch. Each call is fully independent; the service holds no
// mutable state across requests.
type Service struct {
	secret     string
	dispatcher Dispatcher
	logger     logger.Logger
}

func NewService(secret string, dispatcher Dispatcher, log logger.Logger) *Service {
	return &Service{
		secret:     secret,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// Process handles one inbound webhook end to end. No conversion event is
// constructed unless the signature verifies and the topic maps.
func (s *Service) Process(ctx context.Context, in Inbound) (Result, error) {
	ctx, span := tracing.GetTracer("relay-service").Start(ctx, "webhook.process")
	defer span.End()

	if !signature.Verify(in.Body, in.Signature, s.secret) {
		metrics.SignatureFailuresTotal.Inc()
		// The topic header is unauthenticated at this point, so it must not
		// become a label value.
		metrics.WebhooksReceivedTotal.WithLabelValues("unverified", "rejected").Inc()
		return Result{}, errors.ErrSignatureMismatch
	}

	var payload OrderPayload
	if err := json.Unmarshal(in.Body, &payload); err != nil {
		metrics.WebhooksReceivedTotal.WithLabelValues(in.Topic, "malformed").Inc()
		return Result{}, errors.Wrap(err, errors.ErrMalformedPayload)
	}

	eventName, ok := EventNameForTopic(in.Topic)
	if !ok {
		metrics.WebhooksReceivedTotal.WithLabelValues(in.Topic, "ignored").Inc()
		s.logger.InfowCtx(ctx, "Ignoring unmapped topic")
		return Result{Ignored: true}, nil
	}

	userData := capi.BuildUserData(attributesFromPayload(&payload, in))
	event := capi.NewEvent(eventName, payload.EventID(), userData, payload.Value(), payload.Currency)

	if err := s.dispatch(ctx, event); err != nil {
		metrics.WebhooksReceivedTotal.WithLabelValues(in.Topic, "failed").Inc()
		return Result{}, err
	}

	metrics.WebhooksReceivedTotal.WithLabelValues(in.Topic, "forwarded").Inc()
	return Result{EventName: eventName, EventID: event.EventID}, nil
}

// ProcessManual builds a minimal Purchase event from an explicit request.
func (s *Service) ProcessManual(ctx context.Context, req ManualEventRequest) (Result, error) {
	ctx, span := tracing.GetTracer("relay-service").Start(ctx, "webhook.process_manual")
	defer span.End()

	userData := capi.BuildUserData(capi.Attributes{Email: req.Email})
	event := capi.NewEvent(capi.EventPurchase, req.EventID, userData, req.Value, req.Currency)

	if err := s.dispatch(ctx, event); err != nil {
		return Result{}, err
	}

	return Result{EventName: event.EventName, EventID: event.EventID}, nil
}

func (s *Service) dispatch(ctx context.Context, event capi.Event) error {
	start := time.Now()
	err := s.dispatcher.Send(ctx, event)
	if err != nil {
		metrics.ConversionEventsTotal.WithLabelValues(event.EventName, "failed").Inc()
		metrics.ObserveDeliveryDuration(time.Since(start), "failed")
		return err
	}

	metrics.ConversionEventsTotal.WithLabelValues(event.EventName, "forwarded").Inc()
	metrics.ObserveDeliveryDuration(time.Since(start), "forwarded")
	return nil
}

func attributesFromPayload(p *OrderPayload, in Inbound) capi.Attributes {
	attrs := capi.Attributes{
		Email:           p.Email,
		Phone:           p.Phone,
		ClientIPAddress: in.SourceIP,
		ClientUserAgent: in.UserAgent,
	}

	if c := p.Customer; c != nil {
		attrs.FirstName = c.FirstName
		attrs.LastName = c.LastName
		if c.ID != 0 {
			attrs.ExternalID = strconv.FormatInt(c.ID, 10)
		}
		if a := c.DefaultAddress; a != nil {
			attrs.City = a.City
			attrs.State = a.Province
			attrs.Zip = a.Zip
			attrs.Country = a.CountryCode
		}
	}

	return attrs
}
