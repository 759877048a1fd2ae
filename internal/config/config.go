package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config is built once in main and passed by reference to every
// component that needs it. No package keeps its own env lookups.
type Config struct {
	GroqAPIKey    string
	Model         string
	TTSEnabled    bool
	VoiceLanguage string
	BusURL        string

	OutputDir   string
	ProjectsDir string
	DraftsDir   string
	JournalDir  string

	MemoryPath    string
	SaveEvery     int
	ListenTimeout time.Duration
}

var ErrMissingAPIKey = errors.New("GROQ_API_KEY not set")

// Load reads the environment (godotenv has already been applied by main)
// and fills in defaults. The API key is the only hard requirement.
func Load() (*Config, error) {
	cfg := &Config{
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		Model:         "mixtral-8x7b-32768",
		TTSEnabled:    true,
		VoiceLanguage: "en-US",
		BusURL:        os.Getenv("BUS_URL"),
		OutputDir:     "output",
		ProjectsDir:   "output/projects",
		DraftsDir:     "email_drafts",
		JournalDir:    "journal_entries",
		MemoryPath:    "memory.json",
		SaveEvery:     5,
		ListenTimeout: 12 * time.Second,
	}

	if cfg.GroqAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if v := os.Getenv("TTS_ENABLED"); v != "" {
		cfg.TTSEnabled = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("VOICE_LANGUAGE"); v != "" {
		cfg.VoiceLanguage = v
	}

	return cfg, nil
}

// SpeechVoice maps a locale like "en-US" to the voice id the
// synthesizer understands ("en").
func (c *Config) SpeechVoice() string {
	lang := c.VoiceLanguage
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}
