package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the ticket-stats command.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Generator    GeneratorConfig
	Notification NotificationConfig
}

// AppConfig identifies the running process.
type AppConfig struct {
	Name string
	Env  string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
	// Format is "json" or "console".
	Format string
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string
}

// GeneratorConfig drives random ticket generation.
type GeneratorConfig struct {
	Amount  int
	CVEPool []string
	// Seed of 0 means a time based seed.
	Seed int64
}

// NotificationConfig toggles per-ticket event logging.
type NotificationConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	amount, err := strconv.Atoi(getEnv("TICKETS_AMOUNT", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICKETS_AMOUNT: %w", err)
	}
	if amount < 0 {
		return nil, fmt.Errorf("invalid TICKETS_AMOUNT: %d is negative", amount)
	}

	seed, err := strconv.ParseInt(getEnv("TICKETS_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TICKETS_SEED: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "ticket-stats"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
			Output: getEnv("LOG_OUTPUT", "stderr"),
		},
		Generator: GeneratorConfig{
			Amount:  amount,
			CVEPool: splitList(getEnv("TICKETS_CVE_POOL", "CVE-1111,CVE-2222,CVE-3333")),
			Seed:    seed,
		},
		Notification: NotificationConfig{
			Enabled: getEnvAsBool("NOTIFY_ENABLED", false),
		},
	}

	if cfg.Logger.Format != "json" && cfg.Logger.Format != "console" {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %q", cfg.Logger.Format)
	}
	if len(cfg.Generator.CVEPool) == 0 {
		return nil, fmt.Errorf("TICKETS_CVE_POOL must list at least one identifier")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
