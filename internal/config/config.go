package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/subweave/subweave/internal/translate"
)

// Config holds the application configuration, read from environment
// variables with sensible defaults.
//
// Environment Variables:
// - SUBWEAVE_COLOR: font color for the second stream of a combined track (default #87cefa)
// - SUBWEAVE_LANG: original language of the videos (default fi)
// - SUBWEAVE_TARGET_LANG: language to translate into (default en)
// - SUBWEAVE_CACHE: translation cache db path; "@/..." is relative to each video's directory
// - SUBWEAVE_PIPE_CMD: argv of the line-oriented translator coprocess (default argospipe)
// - WHISPER_MODEL: speech-to-text model name (default large-v3)
// - WHISPER_THREADS: CPU threads for the speech-to-text engine (default 8)
// - WHISPER_PROMPT: initial prompt priming the speech-to-text decoder
// - AZURE_KEY: Microsoft Translator subscription key (required for the azure backend only)
// - AZURE_ENDPOINT: override the Microsoft Translator endpoint
// - CRON_EXPR: schedule for watch mode (default "0 3 * * *")
type Config struct {
	Color      string
	Lang       string
	TargetLang string

	CachePath   string
	PipeCommand []string

	WhisperModel   string
	WhisperThreads int
	WhisperPrompt  string

	AzureKey      string
	AzureEndpoint string

	CronExpr string
}

// defaultWhisperPrompt primes the decoder with lecture-style phrasing,
// which improves punctuation on lecture recordings.
const defaultWhisperPrompt = "Hello, and welcome to day 3 of our lecture.  Today, we will discuss varous topics."

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	cfg := &Config{
		Color:          getEnvString("SUBWEAVE_COLOR", "#87cefa"),
		Lang:           getEnvString("SUBWEAVE_LANG", "fi"),
		TargetLang:     getEnvString("SUBWEAVE_TARGET_LANG", "en"),
		CachePath:      getEnvString("SUBWEAVE_CACHE", ""),
		PipeCommand:    strings.Fields(getEnvString("SUBWEAVE_PIPE_CMD", "argospipe")),
		WhisperModel:   getEnvString("WHISPER_MODEL", "large-v3"),
		WhisperThreads: getEnvInt("WHISPER_THREADS", 8),
		WhisperPrompt:  getEnvString("WHISPER_PROMPT", defaultWhisperPrompt),
		AzureKey:       getEnvString("AZURE_KEY", ""),
		AzureEndpoint:  getEnvString("AZURE_ENDPOINT", ""),
		CronExpr:       getEnvString("CRON_EXPR", "0 3 * * *"),
	}
	return cfg, nil
}

// BackendConfig bundles the fields the translation backends need. Whether
// a missing credential matters is the chosen backend's call.
func (c *Config) BackendConfig() translate.BackendConfig {
	return translate.BackendConfig{
		SourceLang:    c.Lang,
		TargetLang:    c.TargetLang,
		PipeCommand:   c.PipeCommand,
		AzureKey:      c.AzureKey,
		AzureEndpoint: c.AzureEndpoint,
	}
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
