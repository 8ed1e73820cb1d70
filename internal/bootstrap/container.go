package bootstrap

import (
	"context"
	"log"
	"time"

	"rude-dashboard-be/internal/config"
	"rude-dashboard-be/internal/controller"
	"rude-dashboard-be/internal/metrics"
	"rude-dashboard-be/internal/pkg/logger"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/implementation"
	"rude-dashboard-be/internal/repository/memory"
	"rude-dashboard-be/internal/repository/redisstore"
	"rude-dashboard-be/internal/service"
	"rude-dashboard-be/pkg/cdn"
	pktNats "rude-dashboard-be/pkg/nats"
	"rude-dashboard-be/pkg/solana"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Container struct {
	// Controllers
	VersionController     controller.IVersionController
	FeatureController     controller.IFeatureController
	WarController         controller.IWarController
	PatoController        controller.IPatoController
	AuthController        controller.IAuthController
	ProductController     controller.IProductController
	TransactionController controller.ITransactionController
	ConquestController    controller.IConquestController

	JwtMiddleware fiber.Handler
	Metrics       *metrics.Metrics
	Logger        logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *mongo.Database, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	m := metrics.New()
	c := &Container{Metrics: m, Logger: sysLogger}

	// 2. Repositories
	transactionRepo := implementation.NewTransactionRepository(db)
	featuredRepo := implementation.NewFeaturedNFTRepository(db)
	productRepo := implementation.NewProductRepository(db)
	metadataRepo := implementation.NewNFTMetadataRepository(db)
	metadataCache := memory.NewMetadataCache(cfg.Game.MetadataCacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := transactionRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("[WARN] Failed to ensure transaction indexes: %v", err)
	}
	cancel()

	// 3. Infrastructure
	// NATS
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// Solana + CDN
	chain := solana.NewClient(cfg.Solana.RPCEndpoint, cfg.Solana.Commitment)

	var uploader service.AssetUploader
	cld, err := cdn.NewCloudinaryUploader(cfg.Cloudinary.URL)
	if err != nil {
		log.Printf("[WARN] Cloudinary disabled: %v", err)
	} else {
		uploader = cld
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Game.ConfirmTopic, pubSub)
	transactionService := service.NewTransactionService(transactionRepo, eventPublisher, m, sysLogger)
	configurationService := service.NewConfigurationService(productRepo, sysLogger)
	authService := service.NewAuthService(
		redisstore.NewNonceStore(rdb),
		cfg.Auth.JWTSecret,
		cfg.Auth.SessionTTL,
		cfg.Auth.NonceTTL,
		sysLogger,
	)
	metadataService := service.NewMetadataService(metadataRepo, metadataCache, chain, m, sysLogger)
	warService := service.NewWarService(metadataService, cfg.Game.PowerTrait)
	patoService := service.NewPatoService(
		service.PatoConfig{
			Mint:           cfg.Game.PatoMint,
			Armor:          cfg.Game.PatoArmor,
			ArmorTrait:     cfg.Game.ArmorTrait,
			MetadataFolder: cfg.Cloudinary.MetadataFolder,
			Operator:       cfg.Game.PatoOperator,
		},
		metadataService,
		uploader,
		transactionService,
		eventPublisher,
		sysLogger,
	)
	featureService := service.NewFeatureService(
		featuredRepo,
		authService,
		configurationService,
		transactionService,
		publisherService,
		sysLogger,
	)
	if cfg.Game.PaymentTreasury == "" {
		log.Printf("[WARN] PAYMENT_TREASURY_WALLET not set, feature payments will be rejected")
	}
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		publisherService,
		service.ConfirmationConfig{
			TopicName:    cfg.Game.ConfirmTopic,
			MaxRetries:   cfg.Game.ConfirmMaxRetries,
			PollInterval: cfg.Game.ConfirmPollInterval,
			Treasury:     cfg.Game.PaymentTreasury,
		},
		chain,
		configurationService,
		transactionService,
		featuredRepo,
		eventPublisher,
		sysLogger,
	)

	// 5. Controllers
	c.VersionController = controller.NewVersionController(service.NewVersionService(cfg.App.Version))
	c.FeatureController = controller.NewFeatureController(featureService)
	c.WarController = controller.NewWarController(warService, cfg.App.CorsAllowedOrigins)
	c.PatoController = controller.NewPatoController(patoService)
	c.AuthController = controller.NewAuthController(authService)
	c.ProductController = controller.NewProductController(configurationService)
	c.TransactionController = controller.NewTransactionController(transactionService)
	c.ConquestController = controller.NewConquestController(cfg.App.ConquestURL)
	if cfg.Auth.JWTSecret == "" {
		log.Printf("[WARN] JWT_SECRET not set, wallet sessions are disabled")
	}
	c.JwtMiddleware = serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	return c
}

// Close releases broker and cache connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
