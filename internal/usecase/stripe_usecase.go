package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"connect_payments/internal/domain/entities"
	"connect_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail                = errors.New("invalid email")
	ErrInvalidAccountID            = errors.New("invalid account id")
	ErrInvalidAmount               = errors.New("invalid amount")
	ErrInvalidCurrency             = errors.New("invalid currency")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrWebhookVerification         = errors.New("webhook signature verification failed")
)

//go:generate mockgen -source=stripe_usecase.go -destination=../adapter/http/handlers/mocks/mock_stripe_usecase.go -package=mocks

// IStripeUseCase exposes the Stripe Connect operations served over HTTP.
//
// Each operation is a pass-through to the payment gateway; the only local
// decisions are input validation, the onboarding return path and the webhook outcome.

type IStripeUseCase interface {
	CreateAccount(ctx context.Context, email string) (entities.ConnectedAccount, entities.OnboardingLink, error)
	DeleteAccount(ctx context.Context, accountID string) (entities.AccountDeletion, error)
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
	CreateAccountLink(ctx context.Context, accountID string) (entities.OnboardingLink, error)
	GetBalance(ctx context.Context, accountID string) (entities.Balance, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (entities.WebhookOutcome, error)
}

type StripeUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IStripeUseCase = (*StripeUseCase)(nil)

func NewStripeUseCase(gateway interfaces.IPaymentGateway) *StripeUseCase {
	return &StripeUseCase{gateway: gateway}
}

// CreateAccount creates an Express account and then an onboarding link for
// the id Stripe returned.
func (u *StripeUseCase) CreateAccount(ctx context.Context, email string) (entities.ConnectedAccount, entities.OnboardingLink, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		log.Printf("[stripe][usecase] create-account invalid email (empty)")
		return entities.ConnectedAccount{}, entities.OnboardingLink{}, ErrInvalidEmail
	}
	if u.gateway == nil {
		return entities.ConnectedAccount{}, entities.OnboardingLink{}, ErrPaymentGatewayNotConfigured
	}

	acct, err := u.gateway.CreateConnectedAccount(ctx, email)
	if err != nil {
		log.Printf("[stripe][usecase] create-account failed err=%v", err)
		return entities.ConnectedAccount{}, entities.OnboardingLink{}, err
	}

	link, err := u.gateway.CreateOnboardingLink(ctx, acct.ID, entities.ReturnPathAccountCreated)
	if err != nil {
		log.Printf("[stripe][usecase] onboarding link failed account_id=%s err=%v", acct.ID, err)
		return entities.ConnectedAccount{}, entities.OnboardingLink{}, err
	}
	log.Printf("[stripe][usecase] create-account success account_id=%s", acct.ID)

	return acct, link, nil
}

func (u *StripeUseCase) DeleteAccount(ctx context.Context, accountID string) (entities.AccountDeletion, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.AccountDeletion{}, ErrInvalidAccountID
	}
	if u.gateway == nil {
		return entities.AccountDeletion{}, ErrPaymentGatewayNotConfigured
	}
	return u.gateway.DeleteConnectedAccount(ctx, accountID)
}

func (u *StripeUseCase) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	req.DestinationAccountID = strings.TrimSpace(req.DestinationAccountID)
	if req.Amount < 0 {
		log.Printf("[stripe][usecase] create-payment-intent invalid amount=%d", req.Amount)
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Currency) == "" {
		return entities.PaymentIntent{}, ErrInvalidCurrency
	}
	if req.DestinationAccountID == "" {
		return entities.PaymentIntent{}, ErrInvalidAccountID
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}

	pi, err := u.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		log.Printf("[stripe][usecase] create-payment-intent failed destination=%s err=%v", req.DestinationAccountID, err)
		return entities.PaymentIntent{}, err
	}
	return pi, nil
}

// CreateAccountLink returns a fresh onboarding link for an existing account.
func (u *StripeUseCase) CreateAccountLink(ctx context.Context, accountID string) (entities.OnboardingLink, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.OnboardingLink{}, ErrInvalidAccountID
	}
	if u.gateway == nil {
		return entities.OnboardingLink{}, ErrPaymentGatewayNotConfigured
	}
	return u.gateway.CreateOnboardingLink(ctx, accountID, entities.ReturnPathAccountLink)
}

func (u *StripeUseCase) GetBalance(ctx context.Context, accountID string) (entities.Balance, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.Balance{}, ErrInvalidAccountID
	}
	if u.gateway == nil {
		return entities.Balance{}, ErrPaymentGatewayNotConfigured
	}
	return u.gateway.GetBalance(ctx, accountID)
}

// HandleWebhook verifies the delivery and reports whether the event kind is
// one this service acts on. Unverified deliveries are never inspected.
func (u *StripeUseCase) HandleWebhook(_ context.Context, payload []byte, signature string) (entities.WebhookOutcome, error) {
	if u.gateway == nil {
		return entities.WebhookOutcome{}, ErrPaymentGatewayNotConfigured
	}

	event, err := u.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return entities.WebhookOutcome{}, fmt.Errorf("%w: %w", ErrWebhookVerification, err)
	}

	outcome := entities.WebhookOutcome{EventID: event.ID, EventType: event.Type}
	switch event.Type {
	case entities.EventTypePaymentIntentSucceeded:
		outcome.Handled = true
		outcome.PaymentIntentID = event.ObjectID
		log.Printf("[stripe][usecase] webhook payment succeeded event_id=%s payment_intent_id=%s", event.ID, event.ObjectID)
	default:
		log.Printf("[stripe][usecase] webhook event not handled event_id=%s type=%s", event.ID, event.Type)
	}
	return outcome, nil
}
