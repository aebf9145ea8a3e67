package interfaces

import (
	"context"

	"connect_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts the external payment provider (Stripe Connect).
//
// Every method issues exactly one remote call. Provider failures are returned
// as *entities.ProviderError.
type IPaymentGateway interface {
	CreateConnectedAccount(ctx context.Context, email string) (entities.ConnectedAccount, error)
	CreateOnboardingLink(ctx context.Context, accountID string, returnPath string) (entities.OnboardingLink, error)
	DeleteConnectedAccount(ctx context.Context, accountID string) (entities.AccountDeletion, error)
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
	GetBalance(ctx context.Context, accountID string) (entities.Balance, error)
	VerifyWebhook(payload []byte, signature string) (entities.WebhookEvent, error)
}
