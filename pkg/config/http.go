// Package config holds the reusable configuration sections consumed by
// the service-level config struct.
package config

import "time"

type HTTPConfig struct {
	Port           int `koanf:"port"           validate:"required,gt=0,lte=65535"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes" validate:"gte=0"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"       validate:"required,gt=0"`
		Write      time.Duration `koanf:"write"      validate:"required,gt=0"`
		Idle       time.Duration `koanf:"idle"       validate:"required,gt=0"`
		ReadHeader time.Duration `koanf:"readHeader" validate:"required,gt=0"`
	} `koanf:"timeout"`
}
