package entities

const EventTypePaymentIntentSucceeded = "payment_intent.succeeded"

// WebhookEvent is a verified provider notification.
//
// ObjectID is the id of the object carried in the event payload
// (the payment intent for payment_intent.* events).

type WebhookEvent struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	ObjectID string         `json:"object_id"`
	Object   map[string]any `json:"object,omitempty"`
}

// WebhookOutcome is what the webhook endpoint reports back to the provider.
type WebhookOutcome struct {
	EventID         string
	EventType       string
	PaymentIntentID string
	Handled         bool
}
