package constants

import "time"

const (
	HeaderShopifyHmac  = "X-Shopify-Hmac-Sha256"
	HeaderShopifyTopic = "X-Shopify-Topic"
)

const (
	DefaultGraphURL        = "https://graph.facebook.com/v19.0"
	DefaultDeliveryTimeout = 5 * time.Second
	DefaultServerTimeout   = 15 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	HTTPStatusOKMin = 200
	HTTPStatusOKMax = 300
)

const (
	ActionSourceWebsite = "website"
	DefaultCurrency     = "USD"
)

// Cap on how much of a Graph API error body is read for logging.
const MaxErrorBodyBytes = 4096
