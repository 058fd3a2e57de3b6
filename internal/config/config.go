package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env    string
	Log    LogConfig
	Output OutputConfig
	Server ServerConfig
	AWS    AWSConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// OutputConfig holds chart output defaults
type OutputConfig struct {
	Dir string
	DPI int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// AWSConfig holds AWS/S3 configuration used to publish charts
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
	S3Prefix        string
}

// PublishEnabled reports whether a bucket is configured
func (c AWSConfig) PublishEnabled() bool {
	return c.S3Bucket != ""
}

var keys = []string{
	"ENVIRONMENT",
	"LOG_LEVEL",
	"OUTPUT_DIR",
	"DEFAULT_DPI",
	"PORT",
	"ALLOWED_ORIGINS",
	"AWS_REGION",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"S3_BUCKET",
	"S3_ENDPOINT",
	"S3_PREFIX",
}

// Load loads configuration from the process environment and .env files
func Load() (*Config, error) {
	return LoadEnv(os.Getenv)
}

// LoadEnv is Load with the environment lookup passed in
func LoadEnv(getenv func(key string) string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT_DIR", "docs/figures")
	v.SetDefault("DEFAULT_DPI", 150)
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PREFIX", "charts")

	env := getenv("ENVIRONMENT")
	if env == "" {
		env = "dev" // Use "dev" to match .env.dev filename
	}

	// Read .env file for the current environment (ignore error if file doesn't exist)
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	// Environment variables override .env file values; empty ones are unset
	for _, key := range keys {
		if val := getenv(key); val != "" {
			v.Set(key, val)
		}
	}

	var config Config
	config.Env = env
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Output.Dir = v.GetString("OUTPUT_DIR")
	config.Output.DPI = v.GetInt("DEFAULT_DPI")
	config.Server.Port = v.GetString("PORT")
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.AWS.Region = v.GetString("AWS_REGION")
	config.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = v.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = v.GetString("S3_ENDPOINT")
	config.AWS.S3Prefix = v.GetString("S3_PREFIX")

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
