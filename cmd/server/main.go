package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"brainbox-backend-go/internal/api"
	"brainbox-backend-go/internal/config"
	"brainbox-backend-go/internal/core"
	"brainbox-backend-go/internal/db"
	"brainbox-backend-go/internal/middleware"
	"brainbox-backend-go/internal/token"
	"brainbox-backend-go/pkg/cache"
	"brainbox-backend-go/pkg/database"
	"brainbox-backend-go/pkg/mailer"
	"brainbox-backend-go/pkg/messagequeue"
)

func main() {
	// Load .env in development; in production the environment is set
	// directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}

	// Document store. A single store handle is shared by every request; the
	// driver pools connections internally.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	store, err := database.NewMongoStore(initCtx, database.NewMongoStoreConfig{
		URI:      appConfig.StoreURI(),
		Database: appConfig.MongoDatabase,
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to the document store", zap.Error(err))
	}
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := store.Close(closeCtx); err != nil {
			zapLogger.Warn("Failed to close store connection", zap.Error(err))
		}
	}()

	// Optional infrastructure: cache, message queue, mailer. Each is
	// skipped with a warning when unconfigured or unreachable.
	var listCache cache.Cache
	if appConfig.RedisAddr != "" {
		listCache, err = cache.NewRedisCache(initCtx, cache.NewRedisCacheConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Warn("Course-list cache disabled: Redis unavailable", zap.Error(err))
			listCache = nil
		}
	}

	var queue messagequeue.MessageQueue
	if appConfig.AMQPURL != "" {
		queue, err = messagequeue.NewRabbitMQService(messagequeue.NewRabbitMQServiceConfig{URL: appConfig.AMQPURL})
		if err != nil {
			zapLogger.Warn("Payment events disabled: RabbitMQ unavailable", zap.Error(err))
			queue = nil
		} else {
			defer queue.Close()
		}
	}

	var receiptMailer mailer.Mailer
	if appConfig.SMTPHost != "" {
		m, err := mailer.NewSMTPMailer(mailer.NewSMTPMailerConfig{
			Host:     appConfig.SMTPHost,
			Port:     appConfig.SMTPPort,
			Username: appConfig.SMTPUsername,
			Password: appConfig.SMTPPassword,
			Sender:   appConfig.SMTPSender,
		})
		if err != nil {
			zapLogger.Warn("Payment receipts disabled: mailer misconfigured", zap.Error(err))
		} else {
			receiptMailer = m
		}
	}

	// Repositories.
	userRepo := db.NewUserRepository(store)
	courseRepo := db.NewCourseRepository(store)
	paymentRepo := db.NewPaymentRepository(store)
	cartRepo := db.NewCartRepository(store)
	bookingRepo := db.NewBookingRepository(store)

	// Services.
	tokenService := token.NewService(appConfig.AccessTokenSecret)
	userService := core.NewUserService(userRepo)
	courseService := core.NewCourseService(courseRepo, paymentRepo, listCache)
	paymentService := core.NewPaymentService(
		store, paymentRepo, cartRepo, bookingRepo,
		queue, appConfig.PaymentEventsQueue, receiptMailer, zapLogger,
	)
	sc := stripeclient.New(appConfig.StripeSecretKey, nil)
	billingService := core.NewBillingService(sc.PaymentIntents)

	// Gin engine and global middleware.
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		tokenService,
		api.NewAuthHandler(tokenService),
		api.NewUserHandler(userService),
		api.NewCourseHandler(courseService),
		api.NewPaymentHandler(paymentService),
		api.NewBillingHandler(billingService),
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully.")
}
