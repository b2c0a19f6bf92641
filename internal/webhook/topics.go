package webhook

import (
	"capirelay/internal/capi"
)

// Shopify topics the relay forwards.
const (
	TopicOrdersCreate    = "orders/create"
	TopicCheckoutsCreate = "checkouts/create"
	TopicCartsCreate     = "carts/create"
)

var topicEventNames = map[string]string{
	TopicOrdersCreate:    capi.EventPurchase,
	TopicCheckoutsCreate: capi.EventInitiateCheckout,
	TopicCartsCreate:     capi.EventAddToCart,
}

// EventNameForTopic maps a Shopify topic to its destination event name.
// Topics outside the table report ok=false and are acknowledged without
// any downstream work, so the source does not retry them.
func EventNameForTopic(topic string) (string, bool) {
	name, ok := topicEventNames[topic]
	return name, ok
}
