package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Order registry backend: memory or dynamodb.
	OrderBackend     string `envconfig:"ORDER_BACKEND" default:"memory"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"eu-west-2"`
	OrderTableName   string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`

	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`

	CardAPIBaseURL     string `envconfig:"CARD_API_BASE_URL" default:"https://api.stripe.com"`
	CardSecretKey      string `envconfig:"CARD_SECRET_KEY" default:""`
	WalletAPIBaseURL   string `envconfig:"WALLET_API_BASE_URL" default:"https://api-m.paypal.com"`
	WalletClientID     string `envconfig:"WALLET_CLIENT_ID" default:""`
	WalletClientSecret string `envconfig:"WALLET_CLIENT_SECRET" default:""`

	CartSnapshotFile string `envconfig:"CART_SNAPSHOT_FILE" default:"cart-snapshot.json"`
	DevCartSeedFile  string `envconfig:"DEV_CART_SEED_FILE" default:"testdata/dev-cart.json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
