package config

// Package config reads the deployment configuration from environment
// variables. Every value has a default suitable for local development.

import (
	"os"
	"time"
)

type Config struct {
	Addr           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenLifetime  time.Duration
	RequestTimeout time.Duration
}

func Load() Config {
	addr := getenv("ADDR", ":5000")
	uri := getenv("MONGODB_URI", "mongodb://localhost:27017")
	dbname := getenv("DB_NAME", "postcomments")
	secret := getenv("JWT_SECRET", "dev-secret-change-me")

	lifeHours := getenv("TOKEN_LIFETIME_HOURS", "24")
	life, err := time.ParseDuration(lifeHours + "h")
	if err != nil {
		life = 24 * time.Hour
	}

	timeoutSecs := getenv("REQUEST_TIMEOUT_SECONDS", "10")
	timeout, err := time.ParseDuration(timeoutSecs + "s")
	if err != nil {
		timeout = 10 * time.Second
	}

	return Config{
		Addr:           addr,
		MongoURI:       uri,
		DBName:         dbname,
		JWTSecret:      secret,
		TokenLifetime:  life,
		RequestTimeout: timeout,
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
