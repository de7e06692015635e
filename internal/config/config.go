// Package config holds the process-wide environment-derived defaults
// §6's "Configuration knobs" table names, loaded with envconfig the way
// longbow/cmd/longbow's grpc server config and longbow/internal/limiter
// load theirs.
package config

import "github.com/kelseyhightower/envconfig"

// Config is the envconfig-tagged set of BALAGRAY_* environment
// variables. CLI flags, when set explicitly, always override these;
// these override the built-in defaults baked into the tags themselves.
type Config struct {
	LogDir         string `envconfig:"LOG_DIR" default:""`
	MetricsAddr    string `envconfig:"METRICS_ADDR" default:":9090"`
	TimeoutMillis  int    `envconfig:"TIMEOUT_MS" default:"30000"`
	PruneImbalance int    `envconfig:"PRUNE_IMBALANCE" default:"3"`
	OptMode        string `envconfig:"OPT_MODE" default:"StdDevTiebreak"`
	WrapPredict    bool   `envconfig:"WRAP_PREDICT" default:"true"`
	StartDepth     int    `envconfig:"START_DEPTH" default:"2"`
}

// Load reads BALAGRAY_*-prefixed environment variables into a fresh
// Config, seeded with the built-in defaults above.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("BALAGRAY", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
