package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	ExportFormat string

	// Share/link tokens
	ShareLinkSecret  string
	ShareLinkBaseURL string

	// LLM Config (used by the recipe clipper)
	LLMProvider  string
	GeminiAPIKey string
	GroqAPIKey   string

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	shareSecret := os.Getenv("SHARE_LINK_SECRET")
	if shareSecret == "" {
		return nil, fmt.Errorf("SHARE_LINK_SECRET environment variable not set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/foodgram.db"
	}

	exportFormat := os.Getenv("EXPORT_FORMAT")
	if exportFormat == "" {
		exportFormat = "txt"
	}
	if exportFormat != "txt" && exportFormat != "xml" {
		return nil, fmt.Errorf("EXPORT_FORMAT must be \"txt\" or \"xml\", got %q", exportFormat)
	}

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	if provider != "gemini" && provider != "groq" {
		return nil, fmt.Errorf("LLM_PROVIDER must be \"gemini\" or \"groq\", got %q", provider)
	}

	// Telegram config (optional for the CLI, required for the bot)
	var allowedIDs []int64
	if raw := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS contains invalid id %q", part)
			}
			allowedIDs = append(allowedIDs, id)
		}
	}

	var adminID int64
	if raw := os.Getenv("ADMIN_TELEGRAM_ID"); raw != "" {
		fmt.Sscanf(raw, "%d", &adminID)
	}

	return &Config{
		DatabasePath:           dbPath,
		ExportFormat:           exportFormat,
		ShareLinkSecret:        shareSecret,
		ShareLinkBaseURL:       os.Getenv("SHARE_LINK_BASE_URL"),
		LLMProvider:            provider,
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:             os.Getenv("GROQ_API_KEY"),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
		AdminTelegramID:        adminID,
	}, nil
}
