package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings helps parse comma-separated values
	"time"    // time parses cache TTL durations
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The database is optional: when the DB variables
// are unset the service runs entirely on its built-in price catalog.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	SessionSecret string // secret used to sign session tokens
	DBUser        string // database username (optional)
	DBPass        string // database password (optional)
	DBHost        string // database host address; empty disables the DB
	DBPort        string // database port number
	DBName        string // database name
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),        // environment (dev/test/prod)
		Port:          must("APP_PORT"),       // port to bind the HTTP server
		SessionSecret: must("SESSION_SECRET"), // secret for signing session tokens
		DBUser:        os.Getenv("DB_USER"),   // database user (optional)
		DBPass:        os.Getenv("DB_PASS"),   // database password (optional)
		DBHost:        os.Getenv("DB_HOST"),   // database host; empty means no DB
		DBPort:        os.Getenv("DB_PORT"),   // database port
		DBName:        os.Getenv("DB_NAME"),   // database name
	}
}

// HasDatabase reports whether enough settings are present to open the price
// override database.
func (c Config) HasDatabase() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBName != "" && c.DBUser != ""
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of key, or def when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
