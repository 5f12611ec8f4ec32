package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"   yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log"      yaml:"log"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"          yaml:"address"`
	Port            string `mapstructure:"port"             yaml:"port"`
	Mode            string `mapstructure:"mode"             yaml:"mode"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return s.Address + ":" + s.Port
}

// GracePeriod parses ShutdownTimeout, falling back to ten seconds when it is
// empty or malformed.
func (s ServerConfig) GracePeriod() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// legacyEnv keeps the plain variable names used by older deployments working
// next to the prefixed ones.
var legacyEnv = map[string]string{
	"server.port":       "PORT",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.name":     "DB_NAME",
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	setDefaults(v)

	v.SetEnvPrefix("GIGBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "GIGBOOK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
