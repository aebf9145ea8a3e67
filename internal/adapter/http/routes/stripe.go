package routes

import (
	"connect_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStripe = "/stripe"
)

func addStripeRoutes(rg *gin.RouterGroup, stripeHandler *handlers.StripeHandler) {
	stripe := rg.Group(PathStripe)
	{
		stripe.POST("/create-account", stripeHandler.CreateAccount)
		stripe.DELETE("/delete-account/:id", stripeHandler.DeleteAccount)
		stripe.POST("/create-payment-intent", stripeHandler.CreatePaymentIntent)
		stripe.POST("/account-link", stripeHandler.CreateAccountLink)
		stripe.GET("/balance/:accountId", stripeHandler.GetBalance)
		// Reads the raw body; must not go through JSON binding.
		stripe.POST("/webhook", stripeHandler.HandleWebhook)
	}
}
