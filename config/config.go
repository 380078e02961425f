package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	NoColor      bool
	SeedFile     string
	LogLevel     string
	LogFile      string
	LogMaxSizeMB int
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Load konfiguratsiyani yuklash. Faqat format xatolari qaytariladi; qiymatlar
// CLI flaglari qo'llangandan keyin Validate bilan tekshiriladi.
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		SeedFile:     os.Getenv("CATALOG_SEED_FILE"),
		LogLevel:     "warn", // UI bilan aralashmasligi uchun
		LogFile:      os.Getenv("LOG_FILE"),
		LogMaxSizeMB: 10,
	}

	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		config.NoColor = true
	}

	if raw := os.Getenv("CATALOG_NO_COLOR"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_NO_COLOR noto'g'ri formatda: %w", err)
		}
		config.NoColor = parsed
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}

	if raw := os.Getenv("LOG_MAX_SIZE_MB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("LOG_MAX_SIZE_MB noto'g'ri formatda: %w", err)
		}
		config.LogMaxSizeMB = parsed
	}

	return config, nil
}

// Validate qiymatlarni tekshirish
func (c *Config) Validate() error {
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("LOG_LEVEL %q noto'g'ri: debug, info, warn yoki error bo'lishi kerak", c.LogLevel)
	}
	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("LOG_MAX_SIZE_MB musbat bo'lishi kerak, berilgan: %d", c.LogMaxSizeMB)
	}
	return nil
}
