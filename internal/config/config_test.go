package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	// Helper function to set environment variables for a test
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Success", func(t *testing.T) {
		setEnv("SHARE_LINK_SECRET", "s3cret")
		setEnv("DATABASE_PATH", "/tmp/test.db")
		setEnv("EXPORT_FORMAT", "xml")
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "100, 200")
		setEnv("ADMIN_TELEGRAM_ID", "100")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.ShareLinkSecret != "s3cret" {
			t.Errorf("Expected ShareLinkSecret to be 's3cret', got '%s'", cfg.ShareLinkSecret)
		}
		if cfg.DatabasePath != "/tmp/test.db" {
			t.Errorf("Expected DatabasePath to be '/tmp/test.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.ExportFormat != "xml" {
			t.Errorf("Expected ExportFormat to be 'xml', got '%s'", cfg.ExportFormat)
		}
		if len(cfg.TelegramAllowedUserIDs) != 2 || cfg.TelegramAllowedUserIDs[0] != 100 || cfg.TelegramAllowedUserIDs[1] != 200 {
			t.Errorf("Expected allowed user IDs [100 200], got %v", cfg.TelegramAllowedUserIDs)
		}
		if cfg.AdminTelegramID != 100 {
			t.Errorf("Expected AdminTelegramID to be 100, got %d", cfg.AdminTelegramID)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		setEnv("SHARE_LINK_SECRET", "s3cret")
		os.Unsetenv("DATABASE_PATH")
		os.Unsetenv("EXPORT_FORMAT")
		os.Unsetenv("LLM_PROVIDER")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "data/foodgram.db" {
			t.Errorf("Expected default DatabasePath 'data/foodgram.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.ExportFormat != "txt" {
			t.Errorf("Expected default ExportFormat 'txt', got '%s'", cfg.ExportFormat)
		}
		if cfg.LLMProvider != "gemini" {
			t.Errorf("Expected default LLMProvider 'gemini', got '%s'", cfg.LLMProvider)
		}
	})

	t.Run("MissingShareLinkSecret", func(t *testing.T) {
		os.Unsetenv("SHARE_LINK_SECRET")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing SHARE_LINK_SECRET, got nil")
		}
		expectedError := "SHARE_LINK_SECRET environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("InvalidExportFormat", func(t *testing.T) {
		setEnv("SHARE_LINK_SECRET", "s3cret")
		setEnv("EXPORT_FORMAT", "pdf")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid EXPORT_FORMAT, got nil")
		}
	})

	t.Run("InvalidAllowedUserIDs", func(t *testing.T) {
		setEnv("SHARE_LINK_SECRET", "s3cret")
		setEnv("EXPORT_FORMAT", "txt")
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "100,abc")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid TELEGRAM_ALLOWED_USER_IDS, got nil")
		}
	})
}
