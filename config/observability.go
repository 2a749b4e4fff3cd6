package config

// MetricsConfig contains StatsD metrics emission configuration.
// Disabled by default; when enabled, request counters and timings are sent
// over UDP to the configured address.
type MetricsConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Address string `env:"ADDRESS" envDefault:"localhost:8125"`
	Prefix  string `env:"PREFIX"  envDefault:"shopadmin"`
}
