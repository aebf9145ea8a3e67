package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"connect_payments/internal/domain/entities"
	"connect_payments/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
	ErrMissingFrontendURL         = errors.New("missing FRONTEND_URL")
)

// Connected accounts are always Express accounts in the US.
const connectedAccountCountry = "US"

// StripeGatewayConfig is built once at startup and never changes afterwards.
type StripeGatewayConfig struct {
	SecretKey     string
	WebhookSecret string
	FrontendURL   string

	// APIURL overrides the Stripe API base (stripe-mock, tests). Empty means api.stripe.com.
	APIURL     string
	HTTPClient *http.Client
}

// StripeGateway issues Stripe Connect calls on behalf of the platform.
//
// It holds no mutable state and is safe for concurrent use.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	frontendURL   string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeGatewayConfig) (*StripeGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		log.Printf("[stripe][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	if strings.TrimSpace(cfg.WebhookSecret) == "" {
		log.Printf("[stripe][gateway] missing STRIPE_WEBHOOK_SECRET")
		return nil, ErrMissingStripeWebhookSecret
	}
	if strings.TrimSpace(cfg.FrontendURL) == "" {
		log.Printf("[stripe][gateway] missing FRONTEND_URL")
		return nil, ErrMissingFrontendURL
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig(cfg)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig(cfg)),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig(cfg)),
	}
	log.Printf("[stripe][gateway] Stripe client initialized api_version=%s custom_api_url=%t", stripe.APIVersion, cfg.APIURL != "")

	return &StripeGateway{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
		frontendURL:   strings.TrimRight(cfg.FrontendURL, "/"),
	}, nil
}

// backendConfig returns a fresh config per backend; stripe-go fills in
// defaults on the pointer it receives.
func backendConfig(cfg StripeGatewayConfig) *stripe.BackendConfig {
	bc := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		bc.URL = stripe.String(cfg.APIURL)
	}
	if cfg.HTTPClient != nil {
		bc.HTTPClient = cfg.HTTPClient
	}
	return bc
}

func (g *StripeGateway) CreateConnectedAccount(ctx context.Context, email string) (entities.ConnectedAccount, error) {
	log.Printf("[stripe][gateway] create-account start")

	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String(connectedAccountCountry),
		Email:   stripe.String(email),
	}
	params.Context = ctx

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		log.Printf("[stripe][gateway] create-account failed err=%v", err)
		return entities.ConnectedAccount{}, mapStripeError(err)
	}

	raw, err := json.Marshal(acct)
	if err != nil {
		log.Printf("[stripe][gateway] account marshal failed account_id=%s err=%v", acct.ID, err)
		return entities.ConnectedAccount{}, err
	}
	log.Printf("[stripe][gateway] create-account success account_id=%s", acct.ID)

	return entities.ConnectedAccount{
		ID:      acct.ID,
		Email:   acct.Email,
		Type:    string(acct.Type),
		Country: acct.Country,
		Raw:     raw,
	}, nil
}

// CreateOnboardingLink builds refresh and return URLs from the frontend base URL.
func (g *StripeGateway) CreateOnboardingLink(ctx context.Context, accountID string, returnPath string) (entities.OnboardingLink, error) {
	log.Printf("[stripe][gateway] account-link start account_id=%s return_path=%s", accountID, returnPath)

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(g.frontendURL + entities.RefreshPath),
		ReturnURL:  stripe.String(g.frontendURL + returnPath),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		log.Printf("[stripe][gateway] account-link failed account_id=%s err=%v", accountID, err)
		return entities.OnboardingLink{}, mapStripeError(err)
	}
	log.Printf("[stripe][gateway] account-link success account_id=%s expires_at=%d", accountID, link.ExpiresAt)

	out := entities.OnboardingLink{URL: link.URL}
	if link.ExpiresAt > 0 {
		out.ExpiresAt = time.Unix(link.ExpiresAt, 0).UTC()
	}
	return out, nil
}

func (g *StripeGateway) DeleteConnectedAccount(ctx context.Context, accountID string) (entities.AccountDeletion, error) {
	log.Printf("[stripe][gateway] delete-account start account_id=%s", accountID)

	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := g.api.Accounts.Del(accountID, params)
	if err != nil {
		log.Printf("[stripe][gateway] delete-account failed account_id=%s err=%v", accountID, err)
		return entities.AccountDeletion{}, mapStripeError(err)
	}

	raw, err := json.Marshal(acct)
	if err != nil {
		log.Printf("[stripe][gateway] deletion marshal failed account_id=%s err=%v", accountID, err)
		return entities.AccountDeletion{}, err
	}
	log.Printf("[stripe][gateway] delete-account success account_id=%s deleted=%t", acct.ID, acct.Deleted)

	return entities.AccountDeletion{ID: acct.ID, Deleted: acct.Deleted, Raw: raw}, nil
}

// CreatePaymentIntent charges on behalf of the destination account: card only,
// manual capture, 10% application fee, remainder transferred to the destination.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	fee := entities.ApplicationFee(req.Amount)
	log.Printf("[stripe][gateway] create-payment-intent start destination=%s amount=%d currency=%s fee=%d", req.DestinationAccountID, req.Amount, req.Currency, fee)

	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(req.Amount),
		Currency:             stripe.String(req.Currency),
		PaymentMethodTypes:   stripe.StringSlice([]string{entities.PaymentMethodCard}),
		CaptureMethod:        stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		ApplicationFeeAmount: stripe.Int64(fee),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.DestinationAccountID),
		},
	}
	params.SetStripeAccount(req.DestinationAccountID)
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[stripe][gateway] create-payment-intent failed destination=%s err=%v", req.DestinationAccountID, err)
		return entities.PaymentIntent{}, mapStripeError(err)
	}
	log.Printf("[stripe][gateway] create-payment-intent success payment_intent_id=%s status=%s", pi.ID, pi.Status)

	return entities.PaymentIntent{
		ID:                   pi.ID,
		Amount:               pi.Amount,
		Currency:             string(pi.Currency),
		DestinationAccountID: req.DestinationAccountID,
		ApplicationFeeAmount: pi.ApplicationFeeAmount,
		CaptureMethod:        string(pi.CaptureMethod),
		ClientSecret:         pi.ClientSecret,
		Status:               string(pi.Status),
	}, nil
}

func (g *StripeGateway) GetBalance(ctx context.Context, accountID string) (entities.Balance, error) {
	log.Printf("[stripe][gateway] balance start account_id=%s", accountID)

	params := &stripe.BalanceParams{}
	params.SetStripeAccount(accountID)
	params.Context = ctx

	bal, err := g.api.Balance.Get(params)
	if err != nil {
		log.Printf("[stripe][gateway] balance failed account_id=%s err=%v", accountID, err)
		return entities.Balance{}, mapStripeError(err)
	}

	raw, err := json.Marshal(bal)
	if err != nil {
		log.Printf("[stripe][gateway] balance marshal failed account_id=%s err=%v", accountID, err)
		return entities.Balance{}, err
	}
	log.Printf("[stripe][gateway] balance success account_id=%s available_entries=%d", accountID, len(bal.Available))

	return entities.Balance{AccountID: accountID, Raw: raw}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the exact raw body.
// Endpoint API versions are managed in the Stripe dashboard, so a version
// different from the one pinned by stripe-go is not treated as a failure.
func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (entities.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Printf("[stripe][gateway] webhook verification failed payload_len=%d err=%v", len(payload), err)
		return entities.WebhookEvent{}, err
	}

	out := entities.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil {
		out.Object = event.Data.Object
		if id, ok := event.Data.Object["id"].(string); ok {
			out.ObjectID = id
		}
	}
	log.Printf("[stripe][gateway] webhook verified event_id=%s type=%s object_id=%s", out.ID, out.Type, out.ObjectID)
	return out, nil
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return err
	}

	status := stripeErr.HTTPStatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	return &entities.ProviderError{
		HTTPStatus: status,
		Code:       string(stripeErr.Code),
		Message:    stripeErr.Msg,
		Err:        err,
	}
}
