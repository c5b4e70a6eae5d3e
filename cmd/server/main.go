package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-request-service/config"
	"inventory-request-service/internal/api"
	"inventory-request-service/internal/broker"
	"inventory-request-service/internal/invoice"
	"inventory-request-service/internal/mailer"
	"inventory-request-service/internal/models"
	"inventory-request-service/internal/redisclient"
	"inventory-request-service/internal/service"
	"inventory-request-service/internal/storage"
	"inventory-request-service/internal/store"
	"inventory-request-service/internal/util"
	"inventory-request-service/internal/worker"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting inventory request service")

	tp, err := util.InitTracer("inventory-request-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicRequests)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	mail := mailer.New(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.AdminEmail)
	if !mail.Enabled() {
		log.Println("Mail disabled: RESEND_API_KEY not set")
	}

	invoiceStorage := storage.NewClient(cfg.Storage.Endpoint, cfg.Storage.Bucket, cfg.Storage.APIKey)
	if !invoiceStorage.Enabled() {
		log.Println("Invoice storage disabled: STORAGE_ENDPOINT not set")
	}

	renderer := invoice.NewRenderer(models.AddressBlock{
		Name:  cfg.Business.SellerName,
		Email: cfg.Business.SellerEmail,
		Lines: cfg.Business.SellerAddressLines,
	})

	requestService := service.NewRequestService(
		db, redisClient, eventPublisher, renderer, mail, invoiceStorage,
		cfg.Business.InvoiceDueDays)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	notifyConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicRequests, cfg.Kafka.ConsumerGroup)
	notifyWorker := worker.NewNotificationWorker(notifyConsumer, mail)
	go func() {
		if err := notifyWorker.Start(workerCtx); err != nil {
			log.Printf("Notification worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(requestService)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	notifyWorker.Stop()

	log.Println("Server exited")
}
