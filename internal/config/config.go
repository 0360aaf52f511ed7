package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config stores runtime configuration for the api and ingest binaries.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	CORSAllowedOrigins []string
	AdminToken         string

	DBDriver   string
	DBURL      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	RapidAPIKey                string
	RapidAPIHost               string
	CricbuzzBaseURL            string
	CricbuzzTimeout            time.Duration
	CricbuzzCircuitEnabled     bool
	CricbuzzCircuitFailures    int
	CricbuzzCircuitOpenTimeout time.Duration

	IngestPlayerPace       time.Duration
	IngestScorecardPace    time.Duration
	IngestScorecardMatches int

	ConsoleSchemaCacheTTL time.Duration
	StatsCacheTTL         time.Duration

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_TIMEOUT must be > 0")
	}
	// A refresh runs inside the request, so the write timeout has to cover a whole run.
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT must be > 0")
	}

	dbDriver, err := parseDBDriver(getEnv("DB_DRIVER", DriverPostgres))
	if err != nil {
		return Config{}, err
	}
	dbPort, err := getEnvAsInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_PORT: %w", err)
	}
	if dbPort <= 0 {
		return Config{}, fmt.Errorf("DB_PORT must be > 0")
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	dbName := strings.TrimSpace(getEnv("DB_NAME", "cricket_db"))
	dbPath := strings.TrimSpace(getEnv("DB_PATH", "cricket.db"))
	if dbDriver == DriverPostgres && dbURL == "" && dbName == "" {
		return Config{}, fmt.Errorf("DB_NAME is required when DB_URL is empty")
	}
	if dbDriver == DriverSQLite && dbPath == "" {
		return Config{}, fmt.Errorf("DB_PATH is required when DB_DRIVER=sqlite")
	}

	cricbuzzTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_TIMEOUT: %w", err)
	}
	if cricbuzzTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_TIMEOUT must be > 0")
	}
	cricbuzzCircuitEnabled, err := strconv.ParseBool(getEnv("CRICBUZZ_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_ENABLED: %w", err)
	}
	cricbuzzCircuitFailures, err := getEnvAsInt("CRICBUZZ_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cricbuzzCircuitFailures <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	cricbuzzCircuitOpenTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if cricbuzzCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	playerPace, err := time.ParseDuration(getEnv("INGEST_PLAYER_PACE", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_PLAYER_PACE: %w", err)
	}
	if playerPace < 0 {
		return Config{}, fmt.Errorf("INGEST_PLAYER_PACE must be >= 0")
	}
	scorecardPace, err := time.ParseDuration(getEnv("INGEST_SCORECARD_PACE", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_SCORECARD_PACE: %w", err)
	}
	if scorecardPace < 0 {
		return Config{}, fmt.Errorf("INGEST_SCORECARD_PACE must be >= 0")
	}
	scorecardMatches, err := getEnvAsInt("INGEST_SCORECARD_MATCHES", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_SCORECARD_MATCHES: %w", err)
	}
	if scorecardMatches <= 0 {
		return Config{}, fmt.Errorf("INGEST_SCORECARD_MATCHES must be > 0")
	}

	schemaCacheTTL, err := time.ParseDuration(getEnv("CONSOLE_SCHEMA_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CONSOLE_SCHEMA_CACHE_TTL: %w", err)
	}
	statsCacheTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CACHE_TTL: %w", err)
	}
	if statsCacheTTL < 0 {
		return Config{}, fmt.Errorf("STATS_CACHE_TTL must be >= 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	serviceName := getEnv("SERVICE_NAME", "cricket-stats")

	return Config{
		AppEnv:         appEnv,
		ServiceName:    serviceName,
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminToken:         strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),

		DBDriver:   dbDriver,
		DBURL:      dbURL,
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     dbPort,
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     dbName,
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     dbPath,

		RapidAPIKey:                strings.TrimSpace(getEnv("RAPIDAPI_KEY", "")),
		RapidAPIHost:               getEnv("RAPIDAPI_HOST", "cricbuzz-cricket.p.rapidapi.com"),
		CricbuzzBaseURL:            getEnv("CRICBUZZ_BASE_URL", "https://cricbuzz-cricket.p.rapidapi.com"),
		CricbuzzTimeout:            cricbuzzTimeout,
		CricbuzzCircuitEnabled:     cricbuzzCircuitEnabled,
		CricbuzzCircuitFailures:    cricbuzzCircuitFailures,
		CricbuzzCircuitOpenTimeout: cricbuzzCircuitOpenTimeout,

		IngestPlayerPace:       playerPace,
		IngestScorecardPace:    scorecardPace,
		IngestScorecardMatches: scorecardMatches,

		ConsoleSchemaCacheTTL: schemaCacheTTL,
		StatsCacheTTL:         statsCacheTTL,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:         getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  getEnv("PPROF_ADDR", "127.0.0.1:6060"),

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseDBDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DriverPostgres, "postgresql":
		return DriverPostgres, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("invalid DB_DRIVER %q: valid values are %s, %s", v, DriverPostgres, DriverSQLite)
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
