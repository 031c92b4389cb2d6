package config

import "time"

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required,gt=0"`
}
