package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SeedAdmin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type App struct {
	DataDir          string    `mapstructure:"data_dir"`
	MaxLoginAttempts int       `mapstructure:"max_login_attempts"`
	LogLevel         string    `mapstructure:"log_level"`
	SeedAdmin        SeedAdmin `mapstructure:"seed_admin"`
}

// Load reads an optional .env (env vars win over file keys) and an optional
// YAML config. Every key has a default, so a bare checkout runs.
func Load(path string) (App, error) {
	_ = godotenv.Load()

	viper.SetDefault("data_dir", "./data")
	viper.SetDefault("max_login_attempts", 3)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("seed_admin.username", "admin")
	viper.SetDefault("seed_admin.password", "admin123")
	viper.SetEnvPrefix("RESTAURANT")
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var a App
	if err := viper.Unmarshal(&a); err != nil {
		return App{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if a.MaxLoginAttempts <= 0 {
		a.MaxLoginAttempts = 3
	}
	return a, nil
}
