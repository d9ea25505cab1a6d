package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	// Driver selects the record store backend: "memory" or "postgres".
	Driver        string
	SeedDemoUsers bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type ChatConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "business-buddy")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("SEED_DEMO_USERS", true)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("CHAT_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("CHAT_MODEL", "gpt-4o")

	// .env is optional; environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Driver:        viper.GetString("STORE_DRIVER"),
			SeedDemoUsers: viper.GetBool("SEED_DEMO_USERS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Chat: ChatConfig{
			BaseURL: viper.GetString("CHAT_BASE_URL"),
			APIKey:  viper.GetString("CHAT_API_KEY"),
			Model:   viper.GetString("CHAT_MODEL"),
		},
	}

	return config, nil
}
