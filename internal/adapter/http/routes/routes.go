package routes

import (
	"log"
	"strconv"

	_ "serralheria_os/docs" // This will be auto-generated
	"serralheria_os/internal/adapter/http/handlers"
	"serralheria_os/internal/adapter/persistence/repository"
	"serralheria_os/internal/infrastructure/config"
	"serralheria_os/internal/infrastructure/database"
	"serralheria_os/internal/infrastructure/notify"
	"serralheria_os/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)
	callRepo := repository.NewCallDynamoRepository(ddb)
	taskRepo := repository.NewTaskDynamoRepository(ddb)
	timeLogRepo := repository.NewTimeLogDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	notifier := notify.Multi{notify.LogNotifier{}, notify.NewHub()}

	allocator := usecase.NewOrderNumberAllocator(
		orderRepo,
		cfg.Numbering.QuotePrefix,
		cfg.Numbering.OrderPrefix,
		cfg.Numbering.MaxProbes,
	)

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, notifier, cfg.Numbering.QuotePrefix)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, budgetRepo, callRepo, allocator, notifier)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, timeLogRepo, orderRepo, notifier)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, orderRepo, timeLogRepo, notifier)
	reportUseCase := usecase.NewReportUseCase(orderRepo, taskRepo, timeLogRepo)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, budgetHandler, orderHandler, taskHandler, invoiceHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
