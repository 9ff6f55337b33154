package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// GATEWAY_URL points the scenarios at an already running gateway,
	// e.g. ws://localhost:8080/ws. When empty an in-process gateway is
	// started instead.
	GatewayURL string `envconfig:"GATEWAY_URL"`
	// E2E_TIMEOUT bounds each scenario step.
	Timeout time.Duration `envconfig:"E2E_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
