package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ochsenreither/go-sigv4/signer"
)

// config is the YAML configuration of the example CLI.
type config struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	AccessKeyID  string `yaml:"access_key_id"`
	SecretKey    string `yaml:"secret_access_key"`
	SessionToken string `yaml:"session_token"`
}

// loadConfig reads and validates the YAML config at path.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	if cfg.Region == "" {
		return nil, errors.New("region is required")
	}
	if cfg.AccessKeyID == "" || cfg.SecretKey == "" {
		return nil, errors.New("access_key_id and secret_access_key are required")
	}

	return &cfg, nil
}

// credentials converts the config into signing credentials.
func (c *config) credentials() signer.Credentials {
	return signer.Credentials{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretKey,
		SessionToken:    c.SessionToken,
	}
}
