package config

import "time"

// StoreConfig tunes the in-memory catalog store. Latency simulates a
// remote backend per operation; zero disables the delay without changing
// any other observable behavior. Seed controls whether the store starts
// with the initial data set or empty.
type StoreConfig struct {
	Latency time.Duration `koanf:"latency" validate:"gte=0"`
	Seed    bool          `koanf:"seed"`
}
