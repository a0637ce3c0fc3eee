package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// NASA NeoWs ingestion.
	NASAAPIKey    string
	NASABaseURL   string
	PageSize      int
	MaxPages      int // 0 means no cap; pagination ends at the catalog's last page
	RatePerMinute int

	// USGS FDSN event service.
	USGSBaseURL string

	APITimeout      time.Duration
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional Kafka sink for derived records.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string

	// Optional file exports; empty paths disable them.
	CSVPath  string
	JSONPath string
}

// Load reads configuration from environment variables, applying defaults
// where unset. The NASA API key has no default and no fallback: it must
// arrive via the environment (or a .env file loaded by the caller).
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	apiTimeoutStr := sharedcfg.EnvOrDefault("API_TIMEOUT", "10s")
	apiTimeout, err2 := time.ParseDuration(apiTimeoutStr)
	if err2 != nil || apiTimeout <= 0 {
		return nil, errors.New("invalid API_TIMEOUT")
	}

	pageSize, err := parseBoundedInt("NEO_PAGE_SIZE", 20, 1, 100)
	if err != nil {
		return nil, err
	}

	maxPages, err := parseBoundedInt("MAX_PAGES", 3, 0, 10000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NASAAPIKey:    os.Getenv("NASA_API_KEY"),
		NASABaseURL:   sharedcfg.EnvOrDefault("NASA_BASE_URL", "https://api.nasa.gov"),
		PageSize:      pageSize,
		MaxPages:      maxPages,
		RatePerMinute: parseRatePerMinute(),

		USGSBaseURL: sharedcfg.EnvOrDefault("USGS_BASE_URL", "https://earthquake.usgs.gov"),

		APITimeout:      apiTimeout,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaEnabled:   os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:   sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "hazardous-neo-records"),

		CSVPath:  os.Getenv("OUTPUT_CSV"),
		JSONPath: os.Getenv("OUTPUT_JSON"),
	}

	if cfg.NASAAPIKey == "" {
		return nil, errors.New("NASA_API_KEY is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is not set")
	}

	return cfg, nil
}

func parseBoundedInt(key string, def, lo, hi int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, lo, hi)
	}
	return n, nil
}

// parseRatePerMinute reads the NeoWs request budget. The default of 30 stays
// well under NASA's 1000-per-hour API key quota. Invalid values fall back to
// the default.
func parseRatePerMinute() int {
	if s := os.Getenv("NASA_RATE_PER_MINUTE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 30
}
