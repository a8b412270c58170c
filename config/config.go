// Package config loads the runtime configuration from the environment, with a
// .env file picked up in development.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr string
	Mode string

	MongoURI string
	DBName   string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	EmailAPIURL   string
	EmailAPIKey   string
	EmailFrom     string
	EmailFromName string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SweepInterval time.Duration
	CORSOrigins   []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	return &Config{
		Addr: getEnv("SERVER_ADDR", ":8080"),
		Mode: getEnv("GIN_MODE", "debug"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("MONGO_DB", "groupup"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      getDuration("CACHE_TTL", 5*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "groupup"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		EmailAPIURL:   os.Getenv("EMAIL_API_URL"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "GroupUp"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		SweepInterval: getDuration("SWEEP_INTERVAL", time.Hour),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
