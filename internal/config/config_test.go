package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingKeyFails(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("TTS_ENABLED", "")
	t.Setenv("VOICE_LANGUAGE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.TTSEnabled)
	assert.Equal(t, "en-US", cfg.VoiceLanguage)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.Model)
	assert.Equal(t, 5, cfg.SaveEvery)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("TTS_ENABLED", "False")
	t.Setenv("VOICE_LANGUAGE", "de-DE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.TTSEnabled)
	assert.Equal(t, "de-DE", cfg.VoiceLanguage)
}

func TestSpeechVoice(t *testing.T) {
	for in, want := range map[string]string{
		"en-US": "en",
		"de_DE": "de",
		"ru":    "ru",
	} {
		cfg := &Config{VoiceLanguage: in}
		assert.Equal(t, want, cfg.SpeechVoice())
	}
}
