package capi

import (
	"time"

	"capirelay/internal/constants"
)

// Destination event taxonomy.
const (
	EventPurchase         = "Purchase"
	EventInitiateCheckout = "InitiateCheckout"
	EventAddToCart        = "AddToCart"
)

// Event is a single Conversions API event. Constructed once per accepted
// webhook and never mutated afterwards.
type Event struct {
	EventName    string     `json:"event_name"`
	EventTime    int64      `json:"event_time"`
	EventID      string     `json:"event_id"`
	ActionSource string     `json:"action_source"`
	UserData     UserData   `json:"user_data"`
	CustomData   CustomData `json:"custom_data"`
}

type CustomData struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// Envelope wraps events for the Graph API events endpoint. TestEventCode
// routes the batch to the pixel's test console when set.
type Envelope struct {
	Data          []Event `json:"data"`
	TestEventCode string  `json:"test_event_code,omitempty"`
}

// UserData carries the identifying match keys. Hashed fields hold hex
// SHA-256 digests; the rest pass through verbatim. All fields are pointers
// so absent attributes are omitted entirely (the receiving schema treats
// key presence as a signal of known identity).
type UserData struct {
	Email      *string `json:"em,omitempty"`
	Phone      *string `json:"ph,omitempty"`
	FirstName  *string `json:"fn,omitempty"`
	LastName   *string `json:"ln,omitempty"`
	Gender     *string `json:"ge,omitempty"`
	Birthdate  *string `json:"db,omitempty"`
	City       *string `json:"ct,omitempty"`
	State      *string `json:"st,omitempty"`
	Zip        *string `json:"zp,omitempty"`
	Country    *string `json:"country,omitempty"`
	ExternalID *string `json:"external_id,omitempty"`

	ClientIPAddress  *string `json:"client_ip_address,omitempty"`
	ClientUserAgent  *string `json:"client_user_agent,omitempty"`
	FBC              *string `json:"fbc,omitempty"`
	FBP              *string `json:"fbp,omitempty"`
	SubscriptionID   *string `json:"subscription_id,omitempty"`
	FBLoginID        *string `json:"fb_login_id,omitempty"`
	LeadID           *string `json:"lead_id,omitempty"`
	AnonID           *string `json:"anon_id,omitempty"`
	MADID            *string `json:"madid,omitempty"`
	PageID           *string `json:"page_id,omitempty"`
	PageScopedUserID *string `json:"page_scoped_user_id,omitempty"`
	CTWAClid         *string `json:"ctwa_clid,omitempty"`
	IGAccountID      *string `json:"ig_account_id,omitempty"`
	IGSID            *string `json:"ig_sid,omitempty"`
}

// NewEvent stamps the event with the current time truncated to whole
// seconds. The currency falls back to USD when the source payload carries
// none.
func NewEvent(name, eventID string, userData UserData, value float64, currency string) Event {
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	return Event{
		EventName:    name,
		EventTime:    time.Now().Unix(),
		EventID:      eventID,
		ActionSource: constants.ActionSourceWebsite,
		UserData:     userData,
		CustomData: CustomData{
			Value:    value,
			Currency: currency,
		},
	}
}
