// Package appconf holds the service-level configuration: the runtime
// environment, the HTTP listen port and optional overrides read from a YAML
// config file.
package appconf

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment, defaulting
// to development for anything unrecognized.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the service: the network
// port to listen on, the operating environment and the per-client rate limit.
type Config struct {
	Port      int
	Env       Environment
	RateLimit int
}

// FileConfig mirrors the optional YAML config file. Flags provide defaults;
// any value present in the file wins.
type FileConfig struct {
	Server struct {
		Port      int `yaml:"port" validate:"gte=0,lte=65535"`
		RateLimit int `yaml:"rate_limit" validate:"gte=0"`
	} `yaml:"server"`
	GTFS struct {
		Path string `yaml:"path"`
	} `yaml:"gtfs"`
}

// LoadFile reads and validates a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := validator.New().Struct(cfg.Server); err != nil {
		return nil, fmt.Errorf("validate config file: %w", err)
	}
	return &cfg, nil
}
