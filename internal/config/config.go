package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	LogLevel  string
	LogFormat string // "text" or "json"

	// Chaincode-as-a-service. When ServerAddress is empty the chaincode is
	// launched by the peer and connects back to it instead.
	ChaincodeID            string
	ChaincodeServerAddress string
	TLSDisabled            bool
	TLSKeyFile             string
	TLSCertFile            string
	TLSClientCACertFile    string

	// Operator tooling.
	NetworksFile   string // optional YAML overlay of the network catalogue
	DeploymentsDir string
}

// Load reads configuration from the environment, after applying a .env file
// in the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:       getEnv("APP_ENV", "dev"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		ChaincodeID:            getEnv("CHAINCODE_ID", ""),
		ChaincodeServerAddress: getEnv("CHAINCODE_SERVER_ADDRESS", ""),
		TLSDisabled:            getEnvBool("CHAINCODE_TLS_DISABLED", true),
		TLSKeyFile:             getEnv("CHAINCODE_TLS_KEY_FILE", ""),
		TLSCertFile:            getEnv("CHAINCODE_TLS_CERT_FILE", ""),
		TLSClientCACertFile:    getEnv("CHAINCODE_TLS_CLIENT_CACERT_FILE", ""),

		NetworksFile:   getEnv("PRESALE_NETWORKS_FILE", ""),
		DeploymentsDir: getEnv("PRESALE_DEPLOYMENTS_DIR", "deployments"),
	}
}

// NewLogger builds the process logger described by cfg.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("env", cfg.Env)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
