package routes

import (
	"log"
	"os"
	"strconv"

	_ "catering_xpto/docs" // This will be auto-generated
	"catering_xpto/internal/adapter/http/handlers"
	repository2 "catering_xpto/internal/adapter/persistence/repository"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/internal/infrastructure/database"
	"catering_xpto/internal/infrastructure/documents"
	"catering_xpto/internal/infrastructure/email"
	"catering_xpto/internal/infrastructure/payments"
	"catering_xpto/internal/usecase"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg/money"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	itemRepo := repository2.NewLineItemDynamoRepository(ddb)
	versionRepo := repository2.NewVersionDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(invoiceRepo, itemRepo, estimateConfigFromEnv())

	var gateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var dispatcher interfaces.IEmailDispatcher
	emailDispatcher, err := email.NewHTTPDispatcher(os.Getenv("EMAIL_FUNCTION_URL"), os.Getenv("EMAIL_FUNCTION_KEY"))
	if err != nil {
		log.Printf("Email dispatcher not configured: %v", err)
	} else {
		dispatcher = emailDispatcher
	}

	workflowUseCase := usecase.NewWorkflowUseCase(invoiceRepo, dispatcher)
	versionUseCase := usecase.NewVersionUseCase(versionRepo, invoiceRepo, itemRepo)
	paymentUseCase := usecase.NewPaymentUseCase(invoiceRepo, milestoneRepo, itemRepo, gateway, documents.NewContractRenderer())

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	versionHandler := handlers.NewVersionHandler(versionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCateringRoutes(v1, estimateHandler, workflowHandler, versionHandler, paymentHandler)
}

func estimateConfigFromEnv() usecase.EstimateConfig {
	return usecase.EstimateConfig{
		Tax: pricing.TaxConfig{
			HospitalityRate: getenvFloat("HOSPITALITY_TAX_RATE", pricing.DefaultHospitalityRate),
			ServiceRate:     getenvFloat("SERVICE_TAX_RATE", pricing.DefaultServiceRate),
		},
		PerGuestPrice:  money.Cents(getenvInt("PER_GUEST_PRICE_CENTS", 2500)),
		ServiceFeeRate: getenvFloat("SERVICE_FEE_RATE", 0.18),
	}
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return parsed
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
