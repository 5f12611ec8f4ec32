package config

import "github.com/spf13/viper"

func GetDefault() Config {
	return Config{
		Server: ServerConfig{
			Address:         "",
			Port:            "8080",
			Mode:            "release",
			ShutdownTimeout: "10s",
		},
		Database: DatabaseConfig{
			Driver:       DriverPostgres,
			Host:         "localhost",
			Port:         "5432",
			User:         "postgres",
			Password:     "",
			Name:         "gigbook",
			SSLMode:      "disable",
			Path:         "gigbook.db",
			MaxOpenConns: 10,
			LogLevel:     "warn",
		},
		Log: LogConfig{
			Level:      "INFO",
			TimeFormat: "2006-01-02 15:04:05",
			File:       "error.log",
			NoColor:    false,
			JSON:       false,
			NoTerminal: false,
			Rotation: LogRotationConfig{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
				Compress:   false,
			},
		},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := GetDefault()

	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.mode", defaults.Server.Mode)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)

	v.SetDefault("database.driver", defaults.Database.Driver)
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.name", defaults.Database.Name)
	v.SetDefault("database.sslmode", defaults.Database.SSLMode)
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("database.max_open_conns", defaults.Database.MaxOpenConns)
	v.SetDefault("database.log_level", defaults.Database.LogLevel)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.time_format", defaults.Log.TimeFormat)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.no_color", defaults.Log.NoColor)
	v.SetDefault("log.json", defaults.Log.JSON)
	v.SetDefault("log.no_terminal", defaults.Log.NoTerminal)
	v.SetDefault("log.rotation.max_size", defaults.Log.Rotation.MaxSize)
	v.SetDefault("log.rotation.max_backups", defaults.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age", defaults.Log.Rotation.MaxAge)
	v.SetDefault("log.rotation.compress", defaults.Log.Rotation.Compress)
}
