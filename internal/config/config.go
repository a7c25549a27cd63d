package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret string
	RedisAddr string

	// Empty key switches the notification dispatcher to fallback mode.
	ResendAPIKey string
	MailFrom     string

	TrackingBaseURL string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		MailFrom:        os.Getenv("MAIL_FROM"),
		TrackingBaseURL: os.Getenv("TRACKING_BASE_URL"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = "SUFI SHINE <orders@sufishine.com>"
	}
	if cfg.TrackingBaseURL == "" {
		cfg.TrackingBaseURL = "https://www.leopardscourier.com"
	}

	return cfg
}
