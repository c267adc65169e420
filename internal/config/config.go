package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	AI       AIConfig       `mapstructure:"ai"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// BaseURL overrides origin derivation when the server sits behind a
	// proxy; when empty, file URLs are built from the incoming request.
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// AIConfig points at the external model server providing STT, translation,
// TTS and image description.
type AIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AppConfig carries application-level settings.
type AppConfig struct {
	AdminPin        string   `mapstructure:"admin_pin"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	TargetLanguages []string `mapstructure:"target_languages"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS,
	// app.admin_pin -> APP_ADMIN_PIN
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "bhasha_rakshak")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("ai.url", "http://localhost:8000")
	viper.SetDefault("ai.timeout", "30s")
	viper.SetDefault("app.cors_origins", []string{"http://localhost:5173"})
	viper.SetDefault("app.target_languages", []string{
		"English", "Hindi", "Tamil", "Telugu", "Kannada",
		"Malayalam", "Bengali", "Gujarati", "Marathi", "Dogri",
	})

	// --- Read Config File ---
	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on defaults and env vars
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
