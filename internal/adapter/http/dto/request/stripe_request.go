package request

import (
	"strings"

	"connect_payments/internal/domain/entities"
)

type CreateAccountRequest struct {
	Email string `json:"email"`
}

// CreatePaymentIntentRequest keeps the field names used by the frontend.
// Amount is in minor currency units. Currency is forwarded as sent; Stripe rejects unknown codes.
type CreatePaymentIntentRequest struct {
	Amount               *int64 `json:"amount" binding:"required"`
	Currency             string `json:"currency"`
	OwnerStripeAccountID string `json:"ownerStripeAccountId"`
}

func (r CreatePaymentIntentRequest) ToEntity() entities.PaymentIntentRequest {
	var amount int64
	if r.Amount != nil {
		amount = *r.Amount
	}
	return entities.PaymentIntentRequest{
		Amount:               amount,
		Currency:             r.Currency,
		DestinationAccountID: strings.TrimSpace(r.OwnerStripeAccountID),
	}
}

type AccountLinkRequest struct {
	AccountID string `json:"accountId"`
}
