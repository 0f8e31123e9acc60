package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/achantasri/JanAwaaz/internal/logging"
)

type Config struct {
	MySQLDSN       string
	RedisURL       string
	JWTSecret      string
	Port           string
	AllowedOrigins []string
	RateLimit      int // requests per minute per IP on auth/vote endpoints
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			logging.Log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	rl, _ := strconv.Atoi(getenv("RATE_LIMIT", "60"))
	return Config{
		MySQLDSN:       getenv("MYSQL_DSN", "janawaaz:janawaaz@tcp(localhost:3306)/janawaaz?parseTime=true"),
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:      os.Getenv("JWT_SECRET"), // api main enforces presence
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		RateLimit:      rl,
	}
}
