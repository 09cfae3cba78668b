package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Fish classification website specifics
	Static StaticConfig
	Upload UploadConfig
	Chat   ChatConfig
	Groq   GroqConfig
	Vision VisionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StaticConfig struct {
	Dir     string
	Blocked string
}

type UploadConfig struct {
	Dir string
}

type ChatConfig struct {
	DataDir     string
	MaxMessages int
}

type GroqConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	Temperature    float64
	MaxTokens      int
	Timeout        time.Duration
	RequestsPerMin int
}

type VisionConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Static assets & uploads
	cfg.Static.Dir = viper.GetString("static.dir")
	cfg.Static.Blocked = viper.GetString("static.blocked")
	cfg.Upload.Dir = viper.GetString("upload.dir")

	// Chat session store
	cfg.Chat.DataDir = viper.GetString("chat.data_dir")
	cfg.Chat.MaxMessages = viper.GetInt("chat.max_messages")

	// Groq completion API
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.Temperature = viper.GetFloat64("groq.temperature")
	cfg.Groq.MaxTokens = viper.GetInt("groq.max_tokens")
	cfg.Groq.Timeout = viper.GetDuration("groq.timeout")
	cfg.Groq.RequestsPerMin = viper.GetInt("groq.requests_per_min")
	if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}

	// Vision inference endpoint (optional)
	cfg.Vision.URL = viper.GetString("vision.url")
	cfg.Vision.APIKey = viper.GetString("vision.api_key")
	cfg.Vision.Timeout = viper.GetDuration("vision.timeout")
	if visionURL := viper.GetString("vision_url"); visionURL != "" {
		cfg.Vision.URL = visionURL
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("static.dir", "./web")
	viper.SetDefault("static.blocked", "fish-classification-website.html")
	viper.SetDefault("upload.dir", "./uploads")

	viper.SetDefault("chat.data_dir", "./data/chat")
	viper.SetDefault("chat.max_messages", 20)

	viper.SetDefault("groq.model", "llama-3.1-8b-instant")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.temperature", 0.7)
	viper.SetDefault("groq.max_tokens", 1024)
	viper.SetDefault("groq.timeout", "30s")
	viper.SetDefault("groq.requests_per_min", 60)

	viper.SetDefault("vision.timeout", "30s")
}
