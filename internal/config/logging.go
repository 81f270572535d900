package config

import "github.com/caarlos0/env/v11"

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Pretty switches the sink to a human-readable console writer for
	// local runs; production keeps JSON lines.
	Pretty bool `env:"LOG_PRETTY" envDefault:"false"`
	// File, when set, receives the log instead of stdout. The file is
	// capped at FileCapMB and restarted from zero when full.
	File      string `env:"LOG_FILE"`
	FileCapMB int    `env:"LOG_FILE_CAP_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
