package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	BaseURL     string
	DatabaseDSN string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	RedisAddr      string
	WilayahBaseURL string

	CloudinaryUrl string
	AccessSecret  string

	AdminEmail    string
	AdminPassword string

	LogLevel  string
	LogFormat string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:  getenv("SERVER_PORT", ":3000"),
		BaseURL:     getenv("BASE_URL", "http://localhost:5173"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "pendaftaran-events"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		WilayahBaseURL: getenv("WILAYAH_BASE_URL", "https://www.emsifa.com/api-wilayah-indonesia/api"),

		CloudinaryUrl: os.Getenv("CLOUDINARY_URL"),
		AccessSecret:  os.Getenv("ACCESS_SECRET"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
