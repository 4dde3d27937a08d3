// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	MongoDBURI    string
	DBName        string
	AdminPassword string
	JWTSecret     string
	AllowedOrigin string
	Port          int
	Trace         bool
}

// Load reads configuration and fails on any missing required value.
// Startup is the only place allowed to be fatal about configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.WithField("prefix", "config").Debug("no .env file, using process environment")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("port", 3001)
	viper.SetDefault("db_name", "ttb")

	for _, key := range []string{"mongodb_uri", "admin_password", "jwt_secret"} {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", strings.ToUpper(key))
		}
	}

	return &Config{
		MongoDBURI:    viper.GetString("mongodb_uri"),
		DBName:        viper.GetString("db_name"),
		AdminPassword: viper.GetString("admin_password"),
		JWTSecret:     viper.GetString("jwt_secret"),
		AllowedOrigin: viper.GetString("allowed_origin"),
		Port:          viper.GetInt("port"),
		Trace:         viper.GetBool("trace"),
	}, nil
}
