package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/chotudairy/sales-api/internal/clock"
	"github.com/chotudairy/sales-api/internal/config"
	httpAPI "github.com/chotudairy/sales-api/internal/http"
	"github.com/chotudairy/sales-api/internal/http/controller"
	"github.com/chotudairy/sales-api/internal/logger"
	"github.com/chotudairy/sales-api/internal/metrics"
	"github.com/chotudairy/sales-api/internal/repository/sql"
	"github.com/chotudairy/sales-api/internal/service"
	sqspkg "github.com/chotudairy/sales-api/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	// Create repositories
	productRepository := sql.NewProductRepository(db)
	saleRepository := sql.NewSaleRepository(db)

	// Event publishing is optional: without a queue URL the services skip it.
	var publisher *sqspkg.Publisher
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	}

	// Create services
	productService := service.NewProductService(productRepository, saleRepository, publisher)
	salesService := service.NewSalesService(saleRepository, productRepository, publisher)
	reportService := service.NewReportService(saleRepository, clock.NewRealClock())

	// Start HTTP server
	ctr := controller.New()
	productCtr := controller.NewProductController(productService)
	salesCtr := controller.NewSalesController(salesService)
	reportCtr := controller.NewReportController(reportService)
	httpServer := gin.Default()
	httpServer = httpAPI.InitRouter(conf, httpServer, ctr, productCtr, salesCtr, reportCtr)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
