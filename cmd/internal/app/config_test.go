package app

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PWTYPE_LOG_LEVEL", "")
	t.Setenv("PWTYPE_LOG_FORMAT", "")
	t.Setenv("PWTYPE_METRICS_DUMP", "")

	cfg := LoadConfig()
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" || cfg.MetricsDump {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_Override(t *testing.T) {
	t.Setenv("PWTYPE_LOG_LEVEL", "debug")
	t.Setenv("PWTYPE_LOG_FORMAT", " text ")
	t.Setenv("PWTYPE_METRICS_DUMP", "true")

	cfg := LoadConfig()
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" || !cfg.MetricsDump {
		t.Fatalf("override failed: %+v", cfg)
	}
}

func TestEnvBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("PWTYPE_TEST_BOOL", "maybe")

	if !EnvBool("PWTYPE_TEST_BOOL", true) {
		t.Fatalf("expected default on invalid bool")
	}
}
