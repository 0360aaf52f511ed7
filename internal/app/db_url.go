package app

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/config"
)

// postgresDSN returns DB_URL when set, otherwise a URL assembled from the
// individual DB_* settings.
func postgresDSN(cfg config.Config) string {
	if raw := strings.TrimSpace(cfg.DBURL); raw != "" {
		return raw
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   cfg.DBHost + ":" + strconv.Itoa(cfg.DBPort),
		Path:   "/" + cfg.DBName,
	}
	if cfg.DBPassword != "" {
		u.User = url.UserPassword(cfg.DBUser, cfg.DBPassword)
	} else if cfg.DBUser != "" {
		u.User = url.User(cfg.DBUser)
	}

	query := url.Values{}
	if sslMode := strings.TrimSpace(cfg.DBSSLMode); sslMode != "" {
		query.Set("sslmode", sslMode)
	}
	u.RawQuery = query.Encode()

	return u.String()
}

// sqliteDSN turns a file path into a modernc DSN with foreign keys on and a
// busy timeout, leaving explicit pragmas alone.
func sqliteDSN(path string) string {
	path = strings.TrimSpace(path)
	if strings.Contains(path, "_pragma=") {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path, sep)
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
