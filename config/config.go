package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var loaded = false

// Config reads a key from the environment, loading .env once on first use.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using environment variables")
		}
		loaded = true
	}
	return os.Getenv(key)
}

// ConfigInt reads a numeric key, falling back to def when unset or malformed.
func ConfigInt(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}
