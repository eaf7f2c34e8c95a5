package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string

	// Geocoding
	NominatimBaseURL   string
	NominatimUserAgent string
	GeocodeTimeoutSec  int
	CityBias           string // Prepended to every geocode query

	// Simulated dataset
	BaseLat      float64
	BaseLon      float64
	JitterDegree float64
	HotspotCount int

	// Route queries
	BoxMarginDegrees float64

	// Static single-page client
	WebRoot string
}

// Load reads configuration from the environment, with an optional .env file
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", ":8080"),
		DBPath:             getEnv("DB_PATH", "./data/hotspots.db"),
		NominatimBaseURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "taichung_traffic_app/1.0"),
		GeocodeTimeoutSec:  getEnvInt("GEOCODE_TIMEOUT_SECONDS", 10),
		CityBias:           getEnv("CITY_BIAS", "台中市"),
		BaseLat:            getEnvFloat("BASE_LAT", 24.1477),
		BaseLon:            getEnvFloat("BASE_LON", 120.6733),
		JitterDegree:       getEnvFloat("JITTER_DEGREE", 0.05),
		HotspotCount:       getEnvInt("HOTSPOT_COUNT", 100),
		BoxMarginDegrees:   getEnvFloat("BOX_MARGIN_DEGREES", 0.01),
		WebRoot:            getEnv("WEB_ROOT", "./web"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
