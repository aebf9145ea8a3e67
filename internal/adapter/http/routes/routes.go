package routes

import (
	"log"

	_ "connect_payments/docs" // generated by swag init
	"connect_payments/internal/adapter/http/handlers"
	"connect_payments/internal/adapter/http/middleware"
	"connect_payments/internal/config"
	"connect_payments/internal/infrastructure/payments"
	"connect_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router, err := NewRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.Printf("[server] listening port=%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires the Stripe gateway, use case and handlers into a gin engine.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gateway, err := payments.NewStripeGateway(payments.StripeGatewayConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		FrontendURL:   cfg.FrontendURL,
		APIURL:        cfg.StripeAPIURL,
	})
	if err != nil {
		return nil, err
	}

	stripeHandler := handlers.NewStripeHandler(usecase.NewStripeUseCase(gateway))

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPingRoutes(&router.RouterGroup)
	addStripeRoutes(&router.RouterGroup, stripeHandler)
	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: request_id=%s err=%v", middleware.GetRequestID(c), recovered)
		c.AbortWithStatus(500)
	}))
}
