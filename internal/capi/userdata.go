package capi

// Attributes is the flexible superset of identifying fields a webhook or
// manual trigger can supply. Every field is optional; an empty string means
// absent.
type Attributes struct {
	Email      string
	Phone      string
	FirstName  string
	LastName   string
	Gender     string
	Birthdate  string
	City       string
	State      string
	Zip        string
	Country    string
	ExternalID string

	ClientIPAddress  string
	ClientUserAgent  string
	FBC              string
	FBP              string
	SubscriptionID   string
	FBLoginID        string
	LeadID           string
	AnonID           string
	MADID            string
	PageID           string
	PageScopedUserID string
	CTWAClid         string
	IGAccountID      string
	IGSID            string
}

// Classification of the user_data keys. PII keys are routed through
// NormalizeAndHash; the rest are emitted verbatim. Kept as explicit tables
// so the hashing breadth is inspectable and testable in one place.
var (
	HashedKeys = []string{
		"em", "ph", "fn", "ln", "ge", "db",
		"ct", "st", "zp", "country", "external_id",
	}

	PassthroughKeys = []string{
		"client_ip_address", "client_user_agent",
		"fbc", "fbp", "subscription_id", "fb_login_id",
		"lead_id", "anon_id", "madid", "page_id",
		"page_scoped_user_id", "ctwa_clid", "ig_account_id", "ig_sid",
	}
)

// BuildUserData classifies each attribute into hashed PII or verbatim
// pass-through. Absent input fields stay absent in the output.
func BuildUserData(attrs Attributes) UserData {
	return UserData{
		Email:      NormalizeAndHash(attrs.Email),
		Phone:      NormalizeAndHash(attrs.Phone),
		FirstName:  NormalizeAndHash(attrs.FirstName),
		LastName:   NormalizeAndHash(attrs.LastName),
		Gender:     NormalizeAndHash(attrs.Gender),
		Birthdate:  NormalizeAndHash(attrs.Birthdate),
		City:       NormalizeAndHash(attrs.City),
		State:      NormalizeAndHash(attrs.State),
		Zip:        NormalizeAndHash(attrs.Zip),
		Country:    NormalizeAndHash(attrs.Country),
		ExternalID: NormalizeAndHash(attrs.ExternalID),

		ClientIPAddress:  passthrough(attrs.ClientIPAddress),
		ClientUserAgent:  passthrough(attrs.ClientUserAgent),
		FBC:              passthrough(attrs.FBC),
		FBP:              passthrough(attrs.FBP),
		SubscriptionID:   passthrough(attrs.SubscriptionID),
		FBLoginID:        passthrough(attrs.FBLoginID),
		LeadID:           passthrough(attrs.LeadID),
		AnonID:           passthrough(attrs.AnonID),
		MADID:            passthrough(attrs.MADID),
		PageID:           passthrough(attrs.PageID),
		PageScopedUserID: passthrough(attrs.PageScopedUserID),
		CTWAClid:         passthrough(attrs.CTWAClid),
		IGAccountID:      passthrough(attrs.IGAccountID),
		IGSID:            passthrough(attrs.IGSID),
	}
}

func passthrough(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
