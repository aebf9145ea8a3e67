package handlers

import (
	"errors"
	"log"
	"net/http"

	request "connect_payments/internal/adapter/http/dto/request"
	response "connect_payments/internal/adapter/http/dto/response"
	"connect_payments/internal/adapter/http/middleware"
	"connect_payments/internal/domain/entities"
	"connect_payments/internal/usecase"
	"connect_payments/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderStripeSignature carries the webhook signature.
	HeaderStripeSignature = "Stripe-Signature"

	// MaxWebhookBodyBytes caps the unauthenticated webhook body read before verification.
	MaxWebhookBodyBytes = int64(65536)
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// StripeHandler handles HTTP requests for Stripe Connect operations.

type StripeHandler struct {
	usecase usecase.IStripeUseCase
}

func NewStripeHandler(uc usecase.IStripeUseCase) *StripeHandler {
	return &StripeHandler{usecase: uc}
}

// CreateAccount creates an Express connected account and its first onboarding link.
//
// @Summary  Create connected account
// @Tags     stripe
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreateAccountRequest  true  "Account owner email"
// @Success  200   {object}  response.CreateAccountResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /stripe/create-account [post]
func (h *StripeHandler) CreateAccount(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	var payload request.CreateAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[stripe][handler] create-account invalid payload request_id=%s err=%v", reqID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	acct, link, err := h.usecase.CreateAccount(c.Request.Context(), payload.Email)
	if err != nil {
		log.Printf("[stripe][handler] create-account failed request_id=%s err=%v", reqID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stripe][handler] create-account success request_id=%s account_id=%s", reqID, acct.ID)

	c.JSON(http.StatusOK, response.FromCreatedAccount(acct, link))
}

// DeleteAccount deletes a connected account and returns Stripe's acknowledgement.
//
// @Summary  Delete connected account
// @Tags     stripe
// @Produce  json
// @Param    id   path  string  true  "Connected account id"
// @Success  200  {object}  map[string]interface{}
// @Router   /stripe/delete-account/{id} [delete]
func (h *StripeHandler) DeleteAccount(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	accountID := c.Param("id")

	res, err := h.usecase.DeleteAccount(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[stripe][handler] delete-account failed request_id=%s account_id=%s err=%v", reqID, accountID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stripe][handler] delete-account success request_id=%s account_id=%s deleted=%t", reqID, accountID, res.Deleted)

	c.JSON(http.StatusOK, response.FromAccountDeletion(res))
}

// CreatePaymentIntent creates a manual-capture card payment on behalf of the owner account.
//
// @Summary  Create payment intent
// @Tags     stripe
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreatePaymentIntentRequest  true  "Amount in minor units, currency and owner account"
// @Success  200   {object}  response.PaymentIntentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /stripe/create-payment-intent [post]
func (h *StripeHandler) CreatePaymentIntent(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	var payload request.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[stripe][handler] create-payment-intent invalid payload request_id=%s err=%v", reqID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	pi, err := h.usecase.CreatePaymentIntent(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[stripe][handler] create-payment-intent failed request_id=%s err=%v", reqID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stripe][handler] create-payment-intent success request_id=%s payment_intent_id=%s", reqID, pi.ID)

	c.JSON(http.StatusOK, response.FromPaymentIntent(pi))
}

// CreateAccountLink returns a fresh onboarding URL for an existing account.
//
// @Summary  Create onboarding link
// @Tags     stripe
// @Accept   json
// @Produce  json
// @Param    body  body      request.AccountLinkRequest  true  "Connected account id"
// @Success  200   {object}  response.AccountLinkResponse
// @Router   /stripe/account-link [post]
func (h *StripeHandler) CreateAccountLink(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	var payload request.AccountLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[stripe][handler] account-link invalid payload request_id=%s err=%v", reqID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	link, err := h.usecase.CreateAccountLink(c.Request.Context(), payload.AccountID)
	if err != nil {
		log.Printf("[stripe][handler] account-link failed request_id=%s account_id=%s err=%v", reqID, payload.AccountID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOnboardingLink(link))
}

// GetBalance returns the Stripe balance of a connected account.
//
// @Summary  Connected account balance
// @Tags     stripe
// @Produce  json
// @Param    accountId  path  string  true  "Connected account id"
// @Success  200  {object}  map[string]interface{}
// @Router   /stripe/balance/{accountId} [get]
func (h *StripeHandler) GetBalance(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	accountID := c.Param("accountId")

	bal, err := h.usecase.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[stripe][handler] balance failed request_id=%s account_id=%s err=%v", reqID, accountID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBalance(bal))
}

// HandleWebhook verifies a Stripe delivery against the raw request body.
//
// Verified events are always acknowledged with 200 so Stripe does not redeliver them.
//
// @Summary  Stripe webhook
// @Tags     stripe
// @Accept   json
// @Produce  json
// @Param    Stripe-Signature  header  string  true  "Stripe signature"
// @Success  200  {object}  response.WebhookHandledResponse
// @Failure  400  {string}  string
// @Failure  413  {string}  string
// @Router   /stripe/webhook [post]
func (h *StripeHandler) HandleWebhook(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		log.Printf("[stripe][handler] webhook body read failed request_id=%s status=%d err=%v", reqID, status, err)
		c.String(status, "Webhook Error: %v", err)
		return
	}

	outcome, err := h.usecase.HandleWebhook(c.Request.Context(), payload, c.GetHeader(HeaderStripeSignature))
	if err != nil {
		if errors.Is(err, usecase.ErrWebhookVerification) {
			log.Printf("[stripe][handler] webhook rejected request_id=%s err=%v", reqID, err)
			c.String(http.StatusBadRequest, "Webhook Error: %v", err)
			return
		}
		log.Printf("[stripe][handler] webhook failed request_id=%s err=%v", reqID, err)
		appErr := mapStripeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stripe][handler] webhook processed request_id=%s event_id=%s type=%s handled=%t", reqID, outcome.EventID, outcome.EventType, outcome.Handled)

	c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
}

func mapStripeError(err error) *pkg.AppError {
	var providerErr *entities.ProviderError
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidAccountID), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookVerification):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Webhook signature verification failed", err, http.StatusBadRequest)
	case errors.As(err, &providerErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", providerErr.Message, err, providerErr.HTTPStatus)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
