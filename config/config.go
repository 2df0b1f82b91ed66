package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	LLM       LLM
	Resources Resources
	Auth      Auth
	LogLevel  string
}

type Server struct {
	Port        string
	GinMode     string
	FrontendURL string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type LLM struct {
	Provider        string // "groq", "gemini" or "anthropic"
	GroqApiKey      string
	GroqModel       string
	GeminiApiKey    string
	GeminiModel     string
	AnthropicApiKey string
	AnthropicModel  string
}

type Resources struct {
	YoutubeApiKey string
	RedisAddr     string
}

type Auth struct {
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("SQLITE_PATH", "data/edulink.db")
	viper.SetDefault("LLM_PROVIDER", "groq")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001")
	viper.SetDefault("JWT_SECRET", "secret_key_123")
	viper.SetDefault("GOOGLE_CALLBACK_URL", "http://localhost:3000/api/auth/google/callback")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.FrontendURL = viper.GetString("FRONTEND_URL")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")

	config.LLM.Provider = strings.ToLower(viper.GetString("LLM_PROVIDER"))
	config.LLM.GroqApiKey = viper.GetString("GROQ_API_KEY")
	config.LLM.GroqModel = viper.GetString("GROQ_MODEL")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.AnthropicApiKey = viper.GetString("ANTHROPIC_API_KEY")
	config.LLM.AnthropicModel = viper.GetString("ANTHROPIC_MODEL")

	config.Resources.YoutubeApiKey = viper.GetString("YOUTUBE_API_KEY")
	config.Resources.RedisAddr = viper.GetString("REDIS_ADDR")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	config.Auth.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	config.Auth.GoogleCallbackURL = viper.GetString("GOOGLE_CALLBACK_URL")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("llmProvider", config.LLM.Provider).
		Bool("youtubeKey", HasCredential(config.Resources.YoutubeApiKey)).
		Bool("redis", config.Resources.RedisAddr != "").
		Msg("Config loaded")
	return &config, nil
}

// HasCredential reports whether key looks like a real credential rather than
// an empty value or a template placeholder such as "your_groq_key_here".
func HasCredential(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(key), "your_")
}

// ActiveLLMKey returns the API key for the configured provider.
func (c *Config) ActiveLLMKey() string {
	switch c.LLM.Provider {
	case "gemini":
		return c.LLM.GeminiApiKey
	case "anthropic":
		return c.LLM.AnthropicApiKey
	default:
		return c.LLM.GroqApiKey
	}
}
