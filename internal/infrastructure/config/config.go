package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	defaultPort                     = "8080"
	defaultShutdownTimeout          = 10 * time.Second
	defaultDBReadinessTimeout       = 30 * time.Second
	defaultDBReadinessRetryInterval = 2 * time.Second
	defaultRPCURL                   = "https://fullnode.mainnet.sui.io:443"
	defaultRPCTimeout               = 10 * time.Second
	defaultGasBudget                = uint64(50_000_000)
	defaultLogLevel                 = "info"
	defaultRateSnapshotSchedule     = "@every 5m"
	defaultJournalListLimit         = 50
	maxJournalListLimit             = 500
)

type ConfigError struct {
	Code     string
	Message  string
	Metadata map[string]string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

type Config struct {
	Port                     string
	OpenAPISpecPath          string
	ShutdownTimeout          time.Duration
	DatabaseURL              string
	DatabaseTarget           string
	DBReadinessTimeout       time.Duration
	DBReadinessRetryInterval time.Duration
	RPCURL                   string
	RPCTimeout               time.Duration
	PrivateKey               string
	GasBudget                uint64
	CatalogPath              string
	LogLevel                 string
	LogPretty                bool
	RateSnapshotSchedule     string
	JournalListLimit         int
}

// JournalEnabled reports whether a database was configured for the
// execution journal.
func (c Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

// SignerConfigured reports whether deposit and withdraw can be signed.
func (c Config) SignerConfigured() bool {
	return c.PrivateKey != ""
}

func LoadConfig() (Config, *ConfigError) {
	cfg := Config{
		Port:                     envOrDefault("PORT", defaultPort),
		OpenAPISpecPath:          strings.TrimSpace(os.Getenv("OPENAPI_SPEC_PATH")),
		ShutdownTimeout:          defaultShutdownTimeout,
		DatabaseURL:              strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBReadinessTimeout:       defaultDBReadinessTimeout,
		DBReadinessRetryInterval: defaultDBReadinessRetryInterval,
		RPCURL:                   envOrDefault("SUI_RPC_URL", defaultRPCURL),
		PrivateKey:               strings.TrimSpace(os.Getenv("SUI_PRIVATE_KEY")),
		CatalogPath:              strings.TrimSpace(os.Getenv("LENDIT_CATALOG_PATH")),
		LogLevel:                 strings.ToLower(envOrDefault("LOG_LEVEL", defaultLogLevel)),
		RateSnapshotSchedule:     envOrDefault("RATE_SNAPSHOT_SCHEDULE", defaultRateSnapshotSchedule),
	}

	if cfg.DatabaseURL != "" {
		target, parseErr := parseDatabaseTarget(cfg.DatabaseURL)
		if parseErr != nil {
			return Config{}, parseErr
		}
		cfg.DatabaseTarget = target
	}

	if parseErr := validateRPCURL(cfg.RPCURL); parseErr != nil {
		return Config{}, parseErr
	}

	rpcTimeout, timeoutErr := parseDuration("SUI_RPC_TIMEOUT", defaultRPCTimeout)
	if timeoutErr != nil {
		return Config{}, timeoutErr
	}
	cfg.RPCTimeout = rpcTimeout

	gasBudget, gasErr := parseGasBudget()
	if gasErr != nil {
		return Config{}, gasErr
	}
	cfg.GasBudget = gasBudget

	logPretty, prettyErr := parseBool("LOG_PRETTY")
	if prettyErr != nil {
		return Config{}, prettyErr
	}
	cfg.LogPretty = logPretty

	if _, err := cron.ParseStandard(cfg.RateSnapshotSchedule); err != nil {
		return Config{}, &ConfigError{
			Code:    "CONFIG_RATE_SNAPSHOT_SCHEDULE_INVALID",
			Message: "RATE_SNAPSHOT_SCHEDULE must be a cron expression or descriptor",
			Metadata: map[string]string{
				"schedule": cfg.RateSnapshotSchedule,
				"error":    err.Error(),
			},
		}
	}

	listLimit, limitErr := parseJournalListLimit()
	if limitErr != nil {
		return Config{}, limitErr
	}
	cfg.JournalListLimit = listLimit

	return cfg, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

func envOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func parseDatabaseTarget(databaseURL string) (string, *ConfigError) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_INVALID",
			Message: "DATABASE_URL is invalid",
		}
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
	default:
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_SCHEME_INVALID",
			Message: "DATABASE_URL must use postgres or postgresql scheme",
		}
	}

	if parsed.Host == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_HOST_MISSING",
			Message: "DATABASE_URL host is required",
		}
	}

	databaseName := strings.TrimPrefix(parsed.Path, "/")
	if databaseName == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_NAME_MISSING",
			Message: "DATABASE_URL database name is required",
		}
	}

	return parsed.Host + "/" + databaseName, nil
}

func validateRPCURL(rawURL string) *ConfigError {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return &ConfigError{
			Code:     "CONFIG_SUI_RPC_URL_INVALID",
			Message:  "SUI_RPC_URL must be an absolute URL",
			Metadata: map[string]string{"url": rawURL},
		}
	}

	switch parsed.Scheme {
	case "http", "https":
		return nil
	default:
		return &ConfigError{
			Code:     "CONFIG_SUI_RPC_URL_SCHEME_INVALID",
			Message:  "SUI_RPC_URL must use http or https scheme",
			Metadata: map[string]string{"url": rawURL},
		}
	}
}

func parseDuration(name string, fallback time.Duration) (time.Duration, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return 0, &ConfigError{
			Code:     "CONFIG_" + name + "_INVALID",
			Message:  name + " must be a positive duration",
			Metadata: map[string]string{"value": raw},
		}
	}
	return parsed, nil
}

func parseBool(name string) (bool, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &ConfigError{
			Code:     "CONFIG_" + name + "_INVALID",
			Message:  name + " must be a boolean",
			Metadata: map[string]string{"value": raw},
		}
	}
	return parsed, nil
}

func parseGasBudget() (uint64, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv("SUI_GAS_BUDGET"))
	if raw == "" {
		return defaultGasBudget, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, &ConfigError{
			Code:     "CONFIG_SUI_GAS_BUDGET_INVALID",
			Message:  "SUI_GAS_BUDGET must be a positive integer in MIST",
			Metadata: map[string]string{"value": raw},
		}
	}
	return parsed, nil
}

func parseJournalListLimit() (int, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv("JOURNAL_LIST_LIMIT"))
	if raw == "" {
		return defaultJournalListLimit, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 || parsed > maxJournalListLimit {
		return 0, &ConfigError{
			Code:    "CONFIG_JOURNAL_LIST_LIMIT_INVALID",
			Message: "JOURNAL_LIST_LIMIT must be an integer between 1 and 500",
			Metadata: map[string]string{
				"value": raw,
			},
		}
	}
	return parsed, nil
}
