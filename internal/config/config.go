package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`

		Collections struct {
			Properties     string `yaml:"properties"`
			Owners         string `yaml:"owners"`
			PropertyImages string `yaml:"property_images"`
			PropertyTraces string `yaml:"property_traces"`
		} `yaml:"collections"`
	} `yaml:"mongo"`
}

var AppConfig *Config

// LoadConfig reads config.yaml (when present), then applies environment
// overrides. A .env file is honored for local development.
func LoadConfig() {
	var cfg Config

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Fatalf("Invalid SERVER_PORT %q: %v", portStr, err)
		}
		cfg.Server.Port = port
	}
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if db := os.Getenv("MONGO_DB"); db != "" {
		cfg.Mongo.Database = db
	}

	// Defaults matching the seed database.
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://localhost:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "realestate"
	}
	if cfg.Mongo.Collections.Properties == "" {
		cfg.Mongo.Collections.Properties = "Properties"
	}
	if cfg.Mongo.Collections.Owners == "" {
		cfg.Mongo.Collections.Owners = "Owners"
	}
	if cfg.Mongo.Collections.PropertyImages == "" {
		cfg.Mongo.Collections.PropertyImages = "PropertyImages"
	}
	if cfg.Mongo.Collections.PropertyTraces == "" {
		cfg.Mongo.Collections.PropertyTraces = "PropertyTraces"
	}

	AppConfig = &cfg
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
