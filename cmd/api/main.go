package main

import (
	_ "connect_payments/docs"
	"connect_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Connect Payments API
// @version         1.0
// @description     Stripe Connect wrapper: connected accounts, onboarding links, payment intents, balances and webhooks.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
