package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Content     ContentConfig `toml:"content"`
	Advisor     AdvisorConfig `toml:"advisor"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// ContentConfig controls seeding and the periodic content maintenance jobs
type ContentConfig struct {
	SeedOnStartup   bool   `toml:"seed_on_startup"`  // Seed both collections when the store is empty
	PacksDir        string `toml:"packs_dir"`        // Directory containing extra seed pack files (TOML)
	UpdateSchedule  string `toml:"update_schedule"`  // Cron schedule for the market update job (empty = disabled)
	RefreshSchedule string `toml:"refresh_schedule"` // Cron schedule for the news timestamp refresh job (empty = disabled)
}

// AdvisorConfig controls the Q&A endpoint behavior
type AdvisorConfig struct {
	AskRateLimit float64 `toml:"ask_rate_limit"` // Requests per second allowed on /api/investments/ask
	AskRateBurst int     `toml:"ask_rate_burst"` // Burst size for the ask rate limiter
	MaxListLimit int     `toml:"max_list_limit"` // Cap on list endpoints (default 100)
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in consilium.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Content: ContentConfig{
			SeedOnStartup:   true,
			PacksDir:        "./content-packs",
			UpdateSchedule:  "",
			RefreshSchedule: "",
		},
		Advisor: AdvisorConfig{
			AskRateLimit: 10,
			AskRateBurst: 20,
			MaxListLimit: 100,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files, later files
// overriding earlier ones. Priority: CLI flags > env > last file > defaults.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CONSILIUM_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("CONSILIUM_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("CONSILIUM_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if badgerPath := os.Getenv("CONSILIUM_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if reset := os.Getenv("CONSILIUM_BADGER_RESET"); reset != "" {
		if r, err := strconv.ParseBool(reset); err == nil {
			config.Storage.Badger.ResetOnStartup = r
		}
	}

	if level := os.Getenv("CONSILIUM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("CONSILIUM_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if seed := os.Getenv("CONSILIUM_CONTENT_SEED_ON_STARTUP"); seed != "" {
		if s, err := strconv.ParseBool(seed); err == nil {
			config.Content.SeedOnStartup = s
		}
	}
	if packsDir := os.Getenv("CONSILIUM_CONTENT_PACKS_DIR"); packsDir != "" {
		config.Content.PacksDir = packsDir
	}
	if schedule := os.Getenv("CONSILIUM_CONTENT_UPDATE_SCHEDULE"); schedule != "" {
		config.Content.UpdateSchedule = schedule
	}
	if schedule := os.Getenv("CONSILIUM_CONTENT_REFRESH_SCHEDULE"); schedule != "" {
		config.Content.RefreshSchedule = schedule
	}

	if limit := os.Getenv("CONSILIUM_ADVISOR_ASK_RATE_LIMIT"); limit != "" {
		if l, err := strconv.ParseFloat(limit, 64); err == nil && l > 0 {
			config.Advisor.AskRateLimit = l
		}
	}
	if burst := os.Getenv("CONSILIUM_ADVISOR_ASK_RATE_BURST"); burst != "" {
		if b, err := strconv.Atoi(burst); err == nil && b > 0 {
			config.Advisor.AskRateBurst = b
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ValidateJobSchedule validates a cron schedule expression and ensures
// a minimum 5-minute interval so content jobs cannot hammer the store.
func ValidateJobSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	parts := strings.Fields(schedule)
	if len(parts) < 5 {
		return fmt.Errorf("invalid cron format: expected 5 fields")
	}

	minuteField := parts[0]
	if minuteField == "*" {
		return fmt.Errorf("schedule must have minimum 5-minute interval (every minute is not allowed)")
	}
	if strings.HasPrefix(minuteField, "*/") {
		interval, err := strconv.Atoi(strings.TrimPrefix(minuteField, "*/"))
		if err == nil && interval < 5 {
			return fmt.Errorf("schedule interval must be at least 5 minutes, got %d", interval)
		}
	}

	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
