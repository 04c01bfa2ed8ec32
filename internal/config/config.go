package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Keys APIKeys
	Ai   AIConfig
	Tts  TTSConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	DeviceLogFilePath  string
	CorsAllowedOrigins string
	CatalogPath        string
}

type APIKeys struct {
	GoogleGemini string
	ElevenLabs   string
}

type AIConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type TTSConfig struct {
	VoiceID  string
	ModelID  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			DeviceLogFilePath:  getEnv("DEVICE_LOG_FILE_PATH", "logs/device.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			CatalogPath:        getEnv("CATALOG_PATH", "menu.json"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
			ElevenLabs:   getEnv("ELEVENLABS_API_KEY", ""),
		},
		Ai: AIConfig{
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),
			Temperature: 0.7,
			MaxTokens:   500,
			Timeout:     getDurationEnv("LLM_TIMEOUT", 30*time.Second),
		},
		Tts: TTSConfig{
			VoiceID:  getEnv("ELEVENLABS_VOICE_ID", ""),
			ModelID:  getEnv("ELEVENLABS_MODEL_ID", "eleven_monolingual_v1"),
			Timeout:  getDurationEnv("TTS_TIMEOUT", 30*time.Second),
			CacheTTL: getDurationEnv("TTS_CACHE_TTL", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}
