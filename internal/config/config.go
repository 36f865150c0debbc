package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

// DefaultDatasetURL is the published monthly global-temperature dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

type AppConfig struct {
	Port string

	// DatasetURL is fetched on every render. DatasetFile, when set, is tried
	// after the URL fails (or alone when DatasetURL is empty).
	DatasetURL  string
	DatasetFile string

	// Outbound fetch behaviour.
	HTTPTimeout     time.Duration
	FetchMaxRetries int

	Layout heatmap.Layout
}

// Load reads configuration from environment with sensible defaults.
// Variables already present in the environment win over .env entries.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DatasetURL = strings.TrimSpace(getenvDefault("DATASET_URL", DefaultDatasetURL))
	if v, ok := os.LookupEnv("DATASET_URL"); ok && strings.TrimSpace(v) == "" {
		// Explicitly emptied: file only.
		cfg.DatasetURL = ""
	}
	cfg.DatasetFile = os.Getenv("DATASET_FILE")
	if cfg.DatasetURL == "" && cfg.DatasetFile == "" {
		return nil, fmt.Errorf("one of DATASET_URL or DATASET_FILE must be set")
	}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.FetchMaxRetries = getenvInt("FETCH_MAX_RETRIES", 3)
	if cfg.FetchMaxRetries < 0 {
		return nil, fmt.Errorf("invalid FETCH_MAX_RETRIES: must not be negative")
	}

	layout := heatmap.DefaultLayout()
	if layout.Width, err = getenvFloat("CHART_WIDTH", layout.Width); err != nil {
		return nil, err
	}
	if layout.Height, err = getenvFloat("CHART_HEIGHT", layout.Height); err != nil {
		return nil, err
	}
	if layout.Padding, err = getenvFloat("CHART_PADDING", layout.Padding); err != nil {
		return nil, err
	}
	layout.ColdColor = getenvDefault("COLOR_COLD", layout.ColdColor)
	layout.HotColor = getenvDefault("COLOR_HOT", layout.HotColor)
	cfg.Layout = layout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
