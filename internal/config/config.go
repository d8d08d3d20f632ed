package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env    string // Env is the current environment: local, development, production.
	DBPath string // DBPath is the path to the SQLite database file.
}

// MustLoad loads the configuration from the environment (a .env file is read
// first if present) and returns a Config struct. Every variable has a default,
// so the binary runs with no configuration at all; it panics only if the
// database path is explicitly set to an empty string.
func MustLoad() *Config {
	_ = godotenv.Load()

	viper.SetEnvPrefix("MNEMOSYNE")
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	viper.SetDefault("env", "local")
	viper.SetDefault("db_path", "employees.db")

	cfg := &Config{
		Env:    viper.GetString("env"),
		DBPath: viper.GetString("db_path"),
	}

	if cfg.DBPath == "" {
		panic("database path is empty")
	}

	return cfg
}
