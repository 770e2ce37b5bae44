package app

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	LogLevel string
	// json (default) or text.
	LogFormat string

	// If true, the construction counters are written to the output stream
	// in Prometheus text format once the input is exhausted.
	MetricsDump bool
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		LogLevel:    EnvString("PWTYPE_LOG_LEVEL", "info"),
		LogFormat:   EnvString("PWTYPE_LOG_FORMAT", "json"),
		MetricsDump: EnvBool("PWTYPE_METRICS_DUMP", false),
	}
}
