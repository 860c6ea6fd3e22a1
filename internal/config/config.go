package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	WhatsAppNumber string
}

func Load() Config {
	// Local .env is optional; env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "garutech.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./garutech.log"
	}
	// Business WhatsApp number the checkout handoff targets, digits only.
	wa := os.Getenv("WHATSAPP_NUMBER")
	if wa == "" {
		wa = "2348000000000"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, WhatsAppNumber: wa}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s WHATSAPP_NUMBER=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.WhatsAppNumber)
	return cfg
}
