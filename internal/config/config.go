package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Settings struct {
	AppTitle       string
	AppDescription string
	Host           string
	Port           int

	GeminiAPIKey string

	// ChatModel handles dictionary lookups and image detection,
	// GenerationModel handles lesson/flashcard/story style content.
	ChatModel       string
	GenerationModel string
}

var settings *Settings

func Init() {
	// Missing .env is fine, variables may come from the environment.
	_ = godotenv.Load()

	initLogger()

	settings = &Settings{
		AppTitle:        "Language Learning Platform",
		AppDescription:  "Conversation, writing and vocabulary practice using AI",
		Host:            envOr("HOST", "127.0.0.1"),
		Port:            envIntOr("PORT", 8054),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ChatModel:       envOr("CHAT_MODEL", "gemini-2.5-flash"),
		GenerationModel: envOr("GENERATION_MODEL", "gemma-3-27b-it"),
	}
}

func Get() *Settings {
	if settings == nil {
		Init()
	}
	return settings
}

// APIKey returns the Gemini API key or an error when it is not configured.
func (s *Settings) APIKey() (string, error) {
	if s.GeminiAPIKey == "" {
		return "", errors.New("GEMINI_API_KEY environment variable not set")
	}
	return s.GeminiAPIKey, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
