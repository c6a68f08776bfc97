package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"serralheria_os"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	AWS struct {
		Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
		// Optional, e.g. http://dynamodb:8000 for local development.
		DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	}

	Numbering struct {
		QuotePrefix string `envconfig:"QUOTE_PREFIX" default:"ORC"`
		OrderPrefix string `envconfig:"ORDER_PREFIX" default:"OS"`
		MaxProbes   int    `envconfig:"ALLOCATOR_MAX_PROBES" default:"50"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
