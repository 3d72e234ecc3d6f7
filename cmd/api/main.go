package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"voice-commerce-gateway/internal/application"
	"voice-commerce-gateway/internal/infrastructure/api"
	"voice-commerce-gateway/internal/infrastructure/encryption"
	"voice-commerce-gateway/internal/infrastructure/maersk"
	"voice-commerce-gateway/internal/infrastructure/shopify"
	"voice-commerce-gateway/internal/infrastructure/smtp"
	"voice-commerce-gateway/internal/infrastructure/tokenstore"
	"voice-commerce-gateway/internal/ports"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("No .env file found")
	}

	apiKey := os.Getenv("P_API_KEY")
	apiSecret := os.Getenv("P_API_SECRET")
	redirectURI := os.Getenv("P_REDIRECT_URI")
	if apiKey == "" || apiSecret == "" || redirectURI == "" {
		logger.Fatal().Msg("P_API_KEY, P_API_SECRET and P_REDIRECT_URI are required")
	}

	apiVersion := envOr("API_VERSION", "2025-01")

	encryptionKey := os.Getenv("ENCRYPTION_KEY")
	if encryptionKey == "" {
		logger.Fatal().Msg("ENCRYPTION_KEY environment variable is required")
	}
	encryptionService, err := encryption.NewService(encryptionKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	// Token store backend: a JSON file by default, MongoDB when configured.
	var tokens ports.TokenStore
	switch backend := envOr("TOKEN_STORE", "file"); backend {
	case "mongo":
		mongoURI := envOr("MONGODB_URI", "mongodb://localhost:27017")
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer client.Disconnect(context.Background())
		tokens = tokenstore.NewMongoStore(client.Database(envOr("MONGODB_DATABASE", "voice_commerce")))
	case "file":
		tokens, err = tokenstore.NewFileStore(envOr("TOKEN_FILE", "shopify_tokens.json"))
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to open token file")
		}
	default:
		logger.Fatal().Str("backend", backend).Msg("Unknown TOKEN_STORE backend")
	}

	redisClient := redis.NewClient(&redis.Options{Addr: envOr("REDIS_ADDR", "localhost:6379")})
	states := tokenstore.NewRedisStateStore(redisClient)

	clientPool := shopify.NewClientPool(apiVersion, shopify.DefaultRetryConfig(), logger)
	oauth := shopify.NewOAuth(apiKey, apiSecret, redirectURI, logger)

	carrierClient := maersk.NewClient(maersk.Config{
		BaseURL: os.Getenv("MAERSK_BASE_URL"),
		APIKey:  os.Getenv("MAERSK_API_KEY"),
	}, logger)
	booker := maersk.NewBooker(carrierClient, logger)

	smtpPort, err := strconv.Atoi(envOr("SMTP_PORT", "587"))
	if err != nil {
		logger.Fatal().Err(err).Msg("SMTP_PORT must be numeric")
	}
	mailer := smtp.NewMailer(smtp.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOr("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
	}, logger)

	orderService := application.NewOrderService(tokens, encryptionService, clientPool, logger)
	shippingService := application.NewShippingService(
		orderService,
		booker,
		os.Getenv("LOCATIONID"),
		os.Getenv("TARIFFHEADERID"),
		logger,
	)
	assistantService := application.NewAssistantService(
		clientPool,
		mailer,
		os.Getenv("TRENDTIME_STORE_NAME"),
		os.Getenv("TRENDTIME_ACCESS_TOKEN"),
		logger,
	)

	server := api.NewServer(
		orderService,
		shippingService,
		assistantService,
		oauth,
		tokens,
		states,
		encryptionService,
		apiKey,
		logger,
	)

	port := envOr("PORT", "8080")
	logger.Info().Str("port", port).Msg("Starting API server")
	if err := http.ListenAndServe(":"+port, server.Routes()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
