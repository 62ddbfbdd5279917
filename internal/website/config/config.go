package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "http://localhost:8001"

type Config struct {
	Port   string
	APIURL string
}

// Load reads the website settings once at startup. A missing .env file is
// not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	port := os.Getenv("WEBSITE_PORT")
	if port == "" {
		port = "4002"
	}
	if port[0] != ':' {
		port = ":" + port
	}

	apiURL := strings.TrimRight(strings.TrimSpace(os.Getenv("LOTAYA_API_URL")), "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Config{
		Port:   port,
		APIURL: apiURL,
	}
}
