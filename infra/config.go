package infra

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServerName         string
	ServerPort         string
	Environment        string
	LogLevel           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBDatabase         string
	DBSSLMode          string
	DBDriver           string
	SignatureToken     string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsRegion          string
	DynamoEndpoint     string
	DynamoTablePrefix  string
	GoogleMapsKey      string
	RedisUrl           string
	LocalStorePath     string
	SyncInterval       time.Duration
	SyncRemote         string
	ResetPasswordURL   string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.WithError(err).Warn("arquivo .env não encontrado, usando variáveis de ambiente")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		ServerName:         v.GetString("SERVER_NAME"),
		ServerPort:         v.GetString("SERVER_PORT"),
		Environment:        v.GetString("ENVIRONMENT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBDatabase:         v.GetString("DB_DATABASE"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		DBDriver:           v.GetString("DB_DRIVER"),
		SignatureToken:     v.GetString("TOKEN_SIGNATURE"),
		AwsAccessKeyID:     v.GetString("AWS_ACCESS_KEY"),
		AwsSecretAccessKey: v.GetString("AWS_SECRET_KEY"),
		AwsRegion:          v.GetString("AWS_REGION"),
		DynamoEndpoint:     v.GetString("DYNAMODB_ENDPOINT"),
		DynamoTablePrefix:  v.GetString("DYNAMODB_TABLE_PREFIX"),
		GoogleMapsKey:      v.GetString("GOOGLE_MAPS_KEY"),
		RedisUrl:           v.GetString("REDIS_URL"),
		LocalStorePath:     v.GetString("LOCAL_STORE_PATH"),
		SyncInterval:       v.GetDuration("SYNC_INTERVAL"),
		SyncRemote:         v.GetString("SYNC_REMOTE"),
		ResetPasswordURL:   v.GetString("RESET_PASSWORD_URL"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_NAME", "logiflow")
	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "?sslmode=disable")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_TABLE_PREFIX", "logiflow_")
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("LOCAL_STORE_PATH", "./data/localstore")
	v.SetDefault("SYNC_INTERVAL", 30*time.Second)
	v.SetDefault("SYNC_REMOTE", "postgres")
	v.SetDefault("RESET_PASSWORD_URL", "http://localhost:5173/reset-password")
}
