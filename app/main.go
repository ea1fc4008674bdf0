package main

import (
	"context"
	"gifttracker/config"
	"gifttracker/middleware"
	"gifttracker/services/tracker/delivery"
	"gifttracker/services/tracker/repository"
	"gifttracker/services/tracker/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const useCaseTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCORSOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(middleware.RequestLogger(log))

	db, err := config.BootDB(context.Background())
	if err != nil {
		log.Fatal("Failed to boot DB")
		return
	}

	// Repos and usecases
	kidRepo := repository.NewKidRepository(db)
	giftRepo := repository.NewGiftRepository(db)

	kidUC := usecase.NewKidUseCase(kidRepo, giftRepo, useCaseTimeout)
	giftUC := usecase.NewGiftUseCase(giftRepo, useCaseTimeout)
	reminderUC := usecase.NewReminderUseCase(kidRepo, useCaseTimeout)

	// Delivery
	api := app.Group("/api")
	delivery.NewKidHandler(api, kidUC)
	delivery.NewGiftHandler(api, giftUC)
	delivery.NewReminderHandler(api, reminderUC)
	delivery.NewUploadHandler(api)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	db.Close()
	log.Info("Server shut down gracefully")
}
