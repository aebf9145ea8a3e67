package entities

// CaptureMethodManual and PaymentMethodCard are applied to every payment intent.
const (
	CaptureMethodManual = "manual"
	PaymentMethodCard   = "card"
)

// applicationFeeDivisor keeps the platform cut at 10%.
const applicationFeeDivisor = 10

type PaymentIntentRequest struct {
	Amount               int64  `json:"amount"`
	Currency             string `json:"currency"`
	DestinationAccountID string `json:"destination_account_id"`
}

// PaymentIntent is a single charge attempt created on behalf of a connected account.
type PaymentIntent struct {
	ID                   string `json:"id"`
	Amount               int64  `json:"amount"`
	Currency             string `json:"currency"`
	DestinationAccountID string `json:"destination_account_id"`
	ApplicationFeeAmount int64  `json:"application_fee_amount"`
	CaptureMethod        string `json:"capture_method"`
	ClientSecret         string `json:"-"`
	Status               string `json:"status"`
}

// ApplicationFee returns floor(amount * 0.10) for a non-negative amount in minor units.
func ApplicationFee(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount / applicationFeeDivisor
}
