package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dalligo/delivery-service/internal/config"
	"github.com/dalligo/delivery-service/internal/delivery/httpapi"
	"github.com/dalligo/delivery-service/internal/infrastructure/kafka"
	"github.com/dalligo/delivery-service/internal/infrastructure/metrics"
	"github.com/dalligo/delivery-service/internal/infrastructure/migrate"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/repository"
	"github.com/dalligo/delivery-service/internal/usecase"
	paymentusecase "github.com/dalligo/delivery-service/internal/usecase/payment"
	reviewusecase "github.com/dalligo/delivery-service/internal/usecase/review"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if migrationPath := os.Getenv("MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	paymentPublisher := kafka.NewKafkaPublisher(brokers, "payment-events")
	reviewPublisher := kafka.NewKafkaPublisher(brokers, "review-events")

	coreMetrics := metrics.NewCoreMetrics()

	// Init repos
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	reviewRepo := repository.NewDefaultReviewRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	cardRepo := repository.NewDefaultCardRepository(db)

	// Init usecases
	paymentUc := paymentusecase.NewDefaultPaymentUsecase(paymentRepo, userRepo, cardRepo, paymentPublisher, coreMetrics)
	reviewUc := reviewusecase.NewDefaultReviewUsecase(reviewRepo, userRepo, storeRepo, reviewPublisher, coreMetrics)
	storeUc := usecase.NewDefaultStoreUsecase(storeRepo)

	// Init HTTP handlers
	paymentHandler := httpapi.NewPaymentHandler(paymentUc)
	reviewHandler := httpapi.NewReviewHandler(reviewUc)
	storeHandler := httpapi.NewStoreHandler(storeUc)

	router := httpapi.NewRouter(paymentHandler, reviewHandler, storeHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
