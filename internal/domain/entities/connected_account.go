package entities

import (
	"encoding/json"
	"time"
)

// Onboarding redirect paths, appended to the configured frontend URL.
const (
	RefreshPath              = "/reauth"
	ReturnPathAccountCreated = "/home/tab1"
	ReturnPathAccountLink    = "/home/tab3"
)

// ConnectedAccount is a provider-managed account of a marketplace seller.
//
// The account is owned by the payment provider; this service never mutates it.
// Raw keeps the provider object as returned, so it can be handed back to callers.

type ConnectedAccount struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Type    string          `json:"type"`
	Country string          `json:"country"`
	Raw     json.RawMessage `json:"-"`
}

// OnboardingLink is a short-lived URL for provider-hosted account setup.
type OnboardingLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AccountDeletion struct {
	ID      string          `json:"id"`
	Deleted bool            `json:"deleted"`
	Raw     json.RawMessage `json:"-"`
}

// Balance is the provider balance scoped to one connected account.
type Balance struct {
	AccountID string          `json:"account_id"`
	Raw       json.RawMessage `json:"-"`
}
