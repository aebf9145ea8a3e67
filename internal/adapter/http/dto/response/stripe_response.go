package response

import (
	"encoding/json"

	"connect_payments/internal/domain/entities"
)

// CreateAccountResponse returns the provider account object as-is plus the onboarding URL.
type CreateAccountResponse struct {
	Account        json.RawMessage `json:"account"`
	OnboardingLink string          `json:"onboardingLink"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type AccountLinkResponse struct {
	URL string `json:"url"`
}

type WebhookHandledResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// WebhookReceivedResponse acknowledges verified events this service does not act on.
type WebhookReceivedResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
}

func FromCreatedAccount(acct entities.ConnectedAccount, link entities.OnboardingLink) CreateAccountResponse {
	return CreateAccountResponse{
		Account:        rawOr(acct.Raw, acct),
		OnboardingLink: link.URL,
	}
}

func FromAccountDeletion(d entities.AccountDeletion) json.RawMessage {
	return rawOr(d.Raw, struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		Deleted bool   `json:"deleted"`
	}{ID: d.ID, Object: "account", Deleted: d.Deleted})
}

func FromBalance(b entities.Balance) json.RawMessage {
	return rawOr(b.Raw, struct {
		Object string `json:"object"`
	}{Object: "balance"})
}

func FromPaymentIntent(pi entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{ClientSecret: pi.ClientSecret}
}

func FromOnboardingLink(link entities.OnboardingLink) AccountLinkResponse {
	return AccountLinkResponse{URL: link.URL}
}

func FromWebhookOutcome(o entities.WebhookOutcome) any {
	if o.Handled {
		return WebhookHandledResponse{Success: true, PaymentIntentID: o.PaymentIntentID}
	}
	return WebhookReceivedResponse{Received: true, Type: o.EventType}
}

// rawOr prefers the provider payload and falls back to the local view of the object.
func rawOr(raw json.RawMessage, fallback any) json.RawMessage {
	if len(raw) > 0 && json.Valid(raw) {
		return raw
	}
	b, err := json.Marshal(fallback)
	if err != nil {
		return json.RawMessage("{}")
	}
	return b
}
