package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envVarPrefix = "CIRCULARLIST"

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
	LogCaller bool   `envconfig:"LOG_CALLER" default:"false"`
}

func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &c, nil
}
