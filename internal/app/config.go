package app

import "time"

type Configuration struct {
	ListenAddress  string        `mapstructure:"listen_address"`
	MetricsAddress string        `mapstructure:"metrics_address"`
	DeveloperMode  bool          `mapstructure:"developer_mode"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

var defaults = map[string]any{
	"listen_address":  ":8080",
	"metrics_address": "0.0.0.0:9090",
	"developer_mode":  false,
	"request_timeout": "10s",
}
