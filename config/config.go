package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer ServerConfigs   `toml:"api_server"`
	Database  DatabaseConfigs `toml:"database"`
	Oracle    OracleConfigs   `toml:"oracle"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type OracleConfigs struct {
	// SuspicionThreshold is the number of prior attempts from one IP inside
	// AttemptWindow above which a caller is treated as suspicious.
	SuspicionThreshold int `toml:"suspicion_threshold"`

	// SuspicionDamping multiplies the luck factor of suspicious callers. The
	// reward is degraded, never refused.
	SuspicionDamping float64 `toml:"suspicion_damping"`

	AttemptWindow Duration `toml:"attempt_window"`

	CodePrefix string `toml:"code_prefix"`
}

// Duration decodes TOML strings like "24h" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "INFO",
		ApiServer: ServerConfigs{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "oracle",
			User:     "root",
			Password: "",
		},
		Oracle: OracleConfigs{
			SuspicionThreshold: 5,
			SuspicionDamping:   0.05,
			AttemptWindow:      Duration{24 * time.Hour},
			CodePrefix:         "NORDIC-",
		},
	}
}
