package config

import (
	"fmt"

	"orcamentos_arq/pkg/logger"

	"github.com/caarlos0/env/v9"
)

// Config is read from the environment once at startup. A .env file is
// autoloaded by cmd/api before Load runs.
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	EstimatesTable     string `env:"ESTIMATES_TABLE" envDefault:"estimates"`
	PaymentsTable      string `env:"PAYMENTS_TABLE" envDefault:"payments"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayer   string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	// PricingTablesFile points at a YAML pricing table; empty means built-in defaults.
	PricingTablesFile string `env:"PRICING_TABLES_FILE"`

	Log logger.Config `envPrefix:"LOG_"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	return &cfg, nil
}
