package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SCRAPE_TIMEOUT", "SCRAPE_RETRY_TIMEOUT", "AI_TIMEOUT", "PERSONAL_RESUME_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 25*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 40*time.Second, cfg.ScrapeRetryTimeout)
	assert.Equal(t, 45*time.Second, cfg.AITimeout)
	assert.Equal(t, "personal_resume.json", cfg.PersonalResumePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_TIMEOUT", "10s")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.AITimeout)
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soon")
	assert.Equal(t, 45*time.Second, Load().AITimeout)

	t.Setenv("AI_TIMEOUT", "-3s")
	assert.Equal(t, 45*time.Second, Load().AITimeout)
}
