package config

import (
	"os"
	"time"
)

// Config is read once at startup from the environment.
type Config struct {
	Port        string
	GeminiKey   string
	GeminiModel string

	// Scraping gets a longer budget than inference: the retry timeout
	// applies to the single retry after a failed page load.
	ScrapeTimeout      time.Duration
	ScrapeRetryTimeout time.Duration
	AITimeout          time.Duration

	PersonalResumePath string
}

func Load() Config {
	return Config{
		Port:               getenv("PORT", "8000"),
		GeminiKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		ScrapeTimeout:      duration("SCRAPE_TIMEOUT", 25*time.Second),
		ScrapeRetryTimeout: duration("SCRAPE_RETRY_TIMEOUT", 40*time.Second),
		AITimeout:          duration("AI_TIMEOUT", 45*time.Second),
		PersonalResumePath: getenv("PERSONAL_RESUME_PATH", "personal_resume.json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
