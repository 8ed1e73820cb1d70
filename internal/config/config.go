package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Mongo      MongoConfig
	Solana     SolanaConfig
	Cloudinary CloudinaryConfig
	Auth       AuthConfig
	Game       GameConfig
}

type AppConfig struct {
	Port               string
	Version            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	PublicDir          string
	ConquestURL        string
	NatsURL            string
	RedisURL           string
}

type MongoConfig struct {
	URI      string
	Database string
}

type SolanaConfig struct {
	RPCEndpoint string
	// Commitment used when confirming payment transactions: processed, confirmed or finalized
	Commitment string
}

type CloudinaryConfig struct {
	URL            string // cloudinary://<key>:<secret>@<cloud>
	MetadataFolder string
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	NonceTTL   time.Duration
}

type GameConfig struct {
	PatoMint            string
	PatoArmor           string
	PatoOperator        string // wallet recorded on fix logs
	PaymentTreasury     string // wallet feature payments must reach
	PowerTrait          string
	ArmorTrait          string
	ConfirmTopic        string
	MetadataCacheTTL    time.Duration
	ConfirmMaxRetries   int
	ConfirmPollInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Version:            getEnv("APP_VERSION", ""),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001"),
			PublicDir:          getEnv("PUBLIC_DIR", ""),
			ConquestURL:        getEnv("CONQUEST_URL", "https://conquest.rudegolems.com"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "rude"),
		},
		Solana: SolanaConfig{
			RPCEndpoint: getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
			Commitment:  getEnv("SOLANA_COMMITMENT", "confirmed"),
		},
		Cloudinary: CloudinaryConfig{
			URL:            getEnv("CLOUDINARY_URL", ""),
			MetadataFolder: getEnv("CLOUDINARY_METADATA_FOLDER", "rude/metadata"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			NonceTTL:   getEnvAsDuration("NONCE_TTL", 5*time.Minute),
		},
		Game: GameConfig{
			PatoMint:            getEnv("PATO_MINT", "7LxGmvGE6Rmzs1BvR3qCz1fhbYQKNvdMuW2GnPG8ZbNe"),
			PatoArmor:           getEnv("PATO_ARMOR", "Golden"),
			PatoOperator:        getEnv("PATO_OPERATOR_WALLET", ""),
			PaymentTreasury:     getEnv("PAYMENT_TREASURY_WALLET", ""),
			PowerTrait:          getEnv("POWER_TRAIT", "Power"),
			ArmorTrait:          getEnv("ARMOR_TRAIT", "Armor"),
			ConfirmTopic:        getEnv("CONFIRM_TOPIC_NAME", "CONFIRM_TRANSACTION"),
			MetadataCacheTTL:    getEnvAsDuration("METADATA_CACHE_TTL", 30*time.Minute),
			ConfirmMaxRetries:   getEnvAsInt("CONFIRM_MAX_RETRIES", 10),
			ConfirmPollInterval: getEnvAsDuration("CONFIRM_POLL_INTERVAL", 3*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
