package webhook

import (
	"strconv"
	"time"
)

// Inbound is one received webhook: the untouched wire bytes plus the
// request metadata the pipeline needs. It lives for the duration of a
// single request.
type Inbound struct {
	Body      []byte
	Signature string
	Topic     string
	SourceIP  string
	UserAgent string
}

// OrderPayload is the subset of Shopify's order/checkout/cart payload the
// relay reads. Everything else in the body is ignored.
type OrderPayload struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	TotalPrice string    `json:"total_price"`
	Currency   string    `json:"currency"`
	Customer   *Customer `json:"customer"`
}

type Customer struct {
	ID             int64    `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	DefaultAddress *Address `json:"default_address"`
}

type Address struct {
	City        string `json:"city"`
	Province    string `json:"province"`
	Zip         string `json:"zip"`
	CountryCode string `json:"country_code"`
}

// EventID derives the deduplication id for the destination. The source's
// own id keeps it stable across Shopify redeliveries. The time-derived
// fallback is not stable across redeliveries and weakens deduplication;
// it only applies to payloads that carry no id at all.
func (p *OrderPayload) EventID() string {
	if p.ID != 0 {
		return strconv.FormatInt(p.ID, 10)
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Value parses total_price, which Shopify sends as a decimal string.
// Absent or unparsable prices count as zero.
func (p *OrderPayload) Value() float64 {
	if p.TotalPrice == "" {
		return 0
	}
	value, err := strconv.ParseFloat(p.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return value
}

// Result reports what the pipeline did with an authenticated webhook.
type Result struct {
	Ignored   bool
	EventName string
	EventID   string
}

// ManualEventRequest is the parsed body of the manual trigger endpoint. It
// builds a Purchase event directly, bypassing signature verification and
// topic mapping.
type ManualEventRequest struct {
	EventID  string  `json:"event_id" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}
