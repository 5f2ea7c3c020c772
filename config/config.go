package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Addr            string
	JWTSecret       string
	TokenTTL        time.Duration
	UploadDir       string
	DataFile        string
	LedgerURL       string
	LedgerSubmitter string
}

// Load reads the configuration from the environment, honoring a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            ":8081",
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        24 * time.Hour,
		UploadDir:       "uploads",
		DataFile:        "data/store.json",
		LedgerURL:       os.Getenv("LEDGER_URL"),
		LedgerSubmitter: os.Getenv("LEDGER_SUBMITTER"),
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.UploadDir = dir
	}
	if file := os.Getenv("DATA_FILE"); file != "" {
		cfg.DataFile = file
	}
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer, got %q", raw)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is empty")
	}

	return cfg, nil
}
