package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:            "8000",
		AppEnv:          "development",
		CSVDataPath:     "csv_data",
		DefaultUsername: "sreeragh",
		AllowedOrigins:  "*",
		CacheTTLSeconds: 300,
		TracingExporter: "stdout",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"otlp exporter", func(c *Config) { c.TracingExporter = "otlp" }, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"empty data path", func(c *Config) { c.CSVDataPath = "" }, true},
		{"empty default username", func(c *Config) { c.DefaultUsername = "" }, true},
		{"negative ttl", func(c *Config) { c.CacheTTLSeconds = -1 }, true},
		{"unknown exporter", func(c *Config) { c.TracingExporter = "jaeger" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
